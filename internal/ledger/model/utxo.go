// Package model defines the ledger's domain types: outpoints, outputs and transactions.
package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UTXO names one output slot of a previously accepted transaction.
// It is a comparable value and is used directly as a map key.
type UTXO struct {
	TxHash chainhash.Hash
	Index  uint32
}

// NewUTXO returns the identifier for output index of the transaction with hash txHash.
func NewUTXO(txHash chainhash.Hash, index uint32) UTXO {
	return UTXO{TxHash: txHash, Index: index}
}

// String renders the identifier as txid:index.
func (u UTXO) String() string {
	return fmt.Sprintf("%s:%d", u.TxHash, u.Index)
}
