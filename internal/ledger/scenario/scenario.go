// Package scenario builds signed ledger inputs from YAML descriptions.
package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/crypto"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/pool"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/service"
	"gopkg.in/yaml.v3"
)

const seedRef = "seed"

// Scenario is a parsed scenario. It hands out its epochs in order through
// Next and is safe for concurrent use.
type Scenario struct {
	name   string
	seed   *pool.Pool
	epochs []model.Epoch
	names  map[chainhash.Hash]string

	mu   sync.Mutex
	next int
}

var _ service.EpochSource = (*Scenario)(nil)

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario, rejecting unknown fields, and builds every
// transaction.
func Parse(data []byte) (*Scenario, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Build(f)
}

// Build turns f into a Scenario.
func Build(f File) (*Scenario, error) {
	b := &builder{
		keys:  make(map[string]*btcec.PrivateKey),
		phr:   f.Keys,
		txs:   make(map[string]*model.Transaction),
		names: make(map[chainhash.Hash]string),
	}

	// Seed outputs hang off a pseudo transaction unique to the scenario name.
	genesis := chainhash.DoubleHashH([]byte("genesis/" + f.Name))
	seed := pool.New()
	for i, out := range f.Seed {
		if out.Value < 0 {
			return nil, fmt.Errorf("seed %d: negative value %d", i, out.Value)
		}
		owner, err := b.address(out.Owner)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		seed.Add(model.NewUTXO(genesis, uint32(i)), model.Output{Value: btcutil.Amount(out.Value), Address: owner})
	}
	b.genesis = genesis

	epochs := make([]model.Epoch, 0, len(f.Epochs))
	for n, es := range f.Epochs {
		epoch := model.Epoch{Number: uint64(n), Transactions: make([]*model.Transaction, 0, len(es.Transactions))}
		for i, txSpec := range es.Transactions {
			tx, err := b.transaction(txSpec)
			if err != nil {
				return nil, fmt.Errorf("epoch %d transaction %d: %w", n, i, err)
			}
			epoch.Transactions = append(epoch.Transactions, tx)
		}
		epochs = append(epochs, epoch)
	}

	return &Scenario{
		name:   f.Name,
		seed:   seed,
		epochs: epochs,
		names:  b.names,
	}, nil
}

// Name returns the scenario name.
func (s *Scenario) Name() string {
	return s.name
}

// Seed returns a copy of the initial pool.
func (s *Scenario) Seed() *pool.Pool {
	return s.seed.Copy()
}

// Epochs returns every epoch in order.
func (s *Scenario) Epochs() []model.Epoch {
	return append([]model.Epoch(nil), s.epochs...)
}

// TxName returns the scenario name of the transaction with hash h.
func (s *Scenario) TxName(h chainhash.Hash) (string, bool) {
	name, ok := s.names[h]
	return name, ok
}

// Next returns the next epoch, or service.ErrNoMoreEpochs once all were handed out.
func (s *Scenario) Next(ctx context.Context) (model.Epoch, error) {
	if err := ctx.Err(); err != nil {
		return model.Epoch{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.epochs) {
		return model.Epoch{}, service.ErrNoMoreEpochs
	}
	epoch := s.epochs[s.next]
	s.next++
	return epoch, nil
}

type builder struct {
	keys    map[string]*btcec.PrivateKey
	phr     map[string]string
	txs     map[string]*model.Transaction
	names   map[chainhash.Hash]string
	genesis chainhash.Hash
}

func (b *builder) key(name string) (*btcec.PrivateKey, error) {
	if name == "" {
		return nil, errors.New("empty key name")
	}
	if k, ok := b.keys[name]; ok {
		return k, nil
	}
	phrase, ok := b.phr[name]
	if !ok {
		phrase = name
	}
	k := crypto.KeyFromSeed(phrase)
	b.keys[name] = k
	return k, nil
}

func (b *builder) address(to string) (model.Address, error) {
	if len(to) == 2*model.AddressSize {
		if addr, err := model.ParseAddress(to); err == nil {
			return addr, nil
		}
	}
	k, err := b.key(to)
	if err != nil {
		return model.Address{}, err
	}
	return crypto.AddressOf(k), nil
}

func (b *builder) resolve(ref string) (model.UTXO, error) {
	i := strings.LastIndexByte(ref, ':')
	if i <= 0 {
		return model.UTXO{}, fmt.Errorf("input ref %q: want <transaction>:<index>", ref)
	}
	name := ref[:i]
	index, err := strconv.ParseUint(ref[i+1:], 10, 32)
	if err != nil {
		return model.UTXO{}, fmt.Errorf("input ref %q: %w", ref, err)
	}

	if name == seedRef {
		// Out of range seed refs are kept so the ledger can reject them.
		return model.NewUTXO(b.genesis, uint32(index)), nil
	}
	tx, ok := b.txs[name]
	if !ok {
		return model.UTXO{}, fmt.Errorf("input ref %q: unknown transaction %q", ref, name)
	}
	return model.NewUTXO(tx.Hash(), uint32(index)), nil
}

func (b *builder) transaction(ts TransactionSpec) (*model.Transaction, error) {
	if ts.Name != "" {
		if _, ok := b.txs[ts.Name]; ok || ts.Name == seedRef {
			return nil, fmt.Errorf("duplicate transaction name %q", ts.Name)
		}
	}

	inputs := make([]model.Input, 0, len(ts.Inputs))
	for _, in := range ts.Inputs {
		id, err := b.resolve(in.Ref)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, model.Input{PrevTxHash: id.TxHash, OutputIndex: id.Index})
	}

	outputs := make([]model.Output, 0, len(ts.Outputs))
	for i, out := range ts.Outputs {
		addr, err := b.address(out.To)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, model.Output{Value: btcutil.Amount(out.Value), Address: addr})
	}

	tx := model.NewTransaction(inputs, outputs)
	for i, in := range ts.Inputs {
		if in.Signer == "" {
			continue
		}
		k, err := b.key(in.Signer)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		if tx, err = crypto.SignInput(tx, i, k); err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
	}

	if ts.Name != "" {
		b.txs[ts.Name] = tx
		b.names[tx.Hash()] = ts.Name
	}
	return tx, nil
}
