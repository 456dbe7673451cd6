// Package crypto provides the signature oracle used to authorize spends,
// plus key helpers for building signed transactions.
package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Verifier reports whether signature authorizes message under address.
// Implementations must be deterministic and free of side effects visible to callers.
type Verifier interface {
	Verify(address model.Address, message, signature []byte) bool
}

// ECDSAVerifier checks DER encoded secp256k1 signatures over the double-SHA256
// of the message.
type ECDSAVerifier struct{}

// NewECDSAVerifier returns the default signature oracle.
func NewECDSAVerifier() ECDSAVerifier {
	return ECDSAVerifier{}
}

// Verify implements Verifier. Malformed keys or signatures verify as false.
func (ECDSAVerifier) Verify(address model.Address, message, signature []byte) bool {
	pub, err := btcec.ParsePubKey(address[:])
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	return sig.Verify(chainhash.DoubleHashB(message), pub)
}
