// Package ledgertest builds signed fixtures for ledger tests.
package ledgertest

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/crypto"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/pool"
)

// Key returns the deterministic key for name.
func Key(name string) *btcec.PrivateKey {
	return crypto.KeyFromSeed("ledgertest/" + name)
}

// Addr returns the address of Key(name).
func Addr(name string) model.Address {
	return crypto.AddressOf(Key(name))
}

// GenesisUTXO returns a seed outpoint that no real transaction hashes to.
func GenesisUTXO(label string, index uint32) model.UTXO {
	return model.NewUTXO(chainhash.DoubleHashH([]byte("genesis/"+label)), index)
}

// Pay is shorthand for an output of value to name.
func Pay(name string, value btcutil.Amount) model.Output {
	return model.Output{Value: value, Address: Addr(name)}
}

// Spend describes one input: the outpoint and the key name that signs it.
// An empty Signer leaves the input unsigned.
type Spend struct {
	UTXO   model.UTXO
	Signer string
}

// Tx builds a transaction from spends and outputs and signs every input.
func Tx(t testing.TB, spends []Spend, outputs ...model.Output) *model.Transaction {
	t.Helper()

	inputs := make([]model.Input, len(spends))
	for i, s := range spends {
		inputs[i] = model.Input{PrevTxHash: s.UTXO.TxHash, OutputIndex: s.UTXO.Index}
	}
	tx := model.NewTransaction(inputs, outputs)

	// Signatures cover outputs and outpoints only, so signing inputs one by
	// one never invalidates an earlier signature.
	signed := tx
	for i, s := range spends {
		if s.Signer == "" {
			continue
		}
		msg, err := tx.SignableBytes(i)
		if err != nil {
			t.Fatalf("signable bytes: %v", err)
		}
		if signed, err = signed.WithSignature(i, crypto.Sign(Key(s.Signer), msg)); err != nil {
			t.Fatalf("attach signature: %v", err)
		}
	}
	return signed
}

// Out returns the outpoint of output index of tx.
func Out(tx *model.Transaction, index uint32) model.UTXO {
	return model.NewUTXO(tx.Hash(), index)
}

// Entry is a seed pool row.
type Entry struct {
	UTXO   model.UTXO
	Output model.Output
}

// Pool returns a pool holding entries.
func Pool(entries ...Entry) *pool.Pool {
	p := pool.New()
	for _, e := range entries {
		p.Add(e.UTXO, e.Output)
	}
	return p
}
