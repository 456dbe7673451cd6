package model

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// AddressSize is the length of a compressed secp256k1 public key.
const AddressSize = 33

// Address identifies the owner of an output. It is the compressed public key
// that must authorize spending the output.
type Address [AddressSize]byte

// ParseAddress decodes a hex encoded compressed public key.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("decode address %q: %w", s, err)
	}
	if len(raw) != AddressSize {
		return a, fmt.Errorf("address %q has %d bytes, want %d", s, len(raw), AddressSize)
	}
	copy(a[:], raw)
	return a, nil
}

// AddressFromBytes copies a serialized compressed public key into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, fmt.Errorf("address has %d bytes, want %d", len(b), AddressSize)
	}
	copy(a[:], b)
	return a, nil
}

// Bytes returns a copy of the serialized key.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Short returns the hash160 fingerprint of the key, handy for log fields.
func (a Address) Short() string {
	return hex.EncodeToString(btcutil.Hash160(a[:]))
}
