// Package pool holds the set of unspent transaction outputs.
package pool

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// ErrNotFound is returned by Get for identifiers absent from the pool.
var ErrNotFound = errors.New("utxo not found")

// View is the read-only side of a pool handed to validation.
type View interface {
	Contains(id model.UTXO) bool
	Get(id model.UTXO) (model.Output, error)
}

var _ View = (*Pool)(nil)

// Pool maps UTXO identifiers to the outputs they name. It has no internal
// locking; the owner serializes access.
type Pool struct {
	entries map[model.UTXO]model.Output
	version uint64
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{entries: make(map[model.UTXO]model.Output)}
}

// Contains reports whether id is present.
func (p *Pool) Contains(id model.UTXO) bool {
	_, ok := p.entries[id]
	return ok
}

// Get returns the output for id or an error wrapping ErrNotFound.
func (p *Pool) Get(id model.UTXO) (model.Output, error) {
	out, ok := p.entries[id]
	if !ok {
		return model.Output{}, fmt.Errorf("utxo %s: %w", id, ErrNotFound)
	}
	return out, nil
}

// Add inserts or overwrites the entry for id.
func (p *Pool) Add(id model.UTXO, out model.Output) {
	p.entries[id] = out
	p.version++
}

// Remove deletes the entry for id. Removing an absent id is a no-op.
func (p *Pool) Remove(id model.UTXO) {
	if _, ok := p.entries[id]; !ok {
		return
	}
	delete(p.entries, id)
	p.version++
}

// Copy returns an independent pool with the same entries and version.
func (p *Pool) Copy() *Pool {
	cp := &Pool{
		entries: make(map[model.UTXO]model.Output, len(p.entries)),
		version: p.version,
	}
	for id, out := range p.entries {
		cp.entries[id] = out
	}
	return cp
}

// Len returns the number of unspent outputs.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Version increases on every effective mutation. Two reads returning the same
// version observed the same pool state.
func (p *Pool) Version() uint64 {
	return p.version
}

// Total sums the value of every entry, failing with safe.ErrOverflow
// instead of wrapping.
func (p *Pool) Total() (btcutil.Amount, error) {
	var (
		total btcutil.Amount
		err   error
	)
	for _, out := range p.entries {
		if total, err = safe.Add(total, out.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// UTXOs lists the identifiers in a deterministic order (hash bytes, then index).
func (p *Pool) UTXOs() []model.UTXO {
	ids := make([]model.UTXO, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if c := bytes.Compare(ids[i].TxHash[:], ids[j].TxHash[:]); c != 0 {
			return c < 0
		}
		return ids[i].Index < ids[j].Index
	})
	return ids
}
