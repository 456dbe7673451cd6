package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// GenerateKey returns a fresh random key.
func GenerateKey() (*btcec.PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return key, nil
}

// KeyFromSeed derives a deterministic key from an arbitrary seed string.
// Only meant for fixtures and scenario files.
func KeyFromSeed(seed string) *btcec.PrivateKey {
	key, _ := btcec.PrivKeyFromBytes(chainhash.HashB([]byte(seed)))
	return key
}

// AddressOf returns the address owned by key.
func AddressOf(key *btcec.PrivateKey) model.Address {
	var addr model.Address
	copy(addr[:], key.PubKey().SerializeCompressed())
	return addr
}

// Sign produces a DER signature over message that ECDSAVerifier accepts.
func Sign(key *btcec.PrivateKey, message []byte) []byte {
	return ecdsa.Sign(key, chainhash.DoubleHashB(message)).Serialize()
}

// SignInput signs input i of tx with key and returns the signed transaction.
func SignInput(tx *model.Transaction, i int, key *btcec.PrivateKey) (*model.Transaction, error) {
	msg, err := tx.SignableBytes(i)
	if err != nil {
		return nil, fmt.Errorf("signable bytes: %w", err)
	}
	return tx.WithSignature(i, Sign(key, msg))
}
