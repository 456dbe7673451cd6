package model

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// encodingVersion is passed to the wire helpers; the ledger has a single encoding.
const encodingVersion uint32 = 0

// Input spends the output named by (PrevTxHash, OutputIndex).
type Input struct {
	PrevTxHash  chainhash.Hash
	OutputIndex uint32
	Signature   []byte
}

// UTXO returns the identifier of the output this input claims.
func (in Input) UTXO() UTXO {
	return NewUTXO(in.PrevTxHash, in.OutputIndex)
}

// Output is a value paid to an address. It is also the value stored in the UTXO pool.
type Output struct {
	Value   btcutil.Amount
	Address Address
}

// Transaction is an immutable set of inputs and outputs. Use NewTransaction to
// build one and WithSignature to attach input signatures.
type Transaction struct {
	inputs  []Input
	outputs []Output
	hash    chainhash.Hash
}

// NewTransaction copies inputs and outputs and computes the content hash.
func NewTransaction(inputs []Input, outputs []Output) *Transaction {
	tx := &Transaction{
		inputs:  cloneInputs(inputs),
		outputs: append([]Output(nil), outputs...),
	}
	tx.hash = chainhash.DoubleHashH(tx.serialize())
	return tx
}

// Hash is the double-SHA256 of the full serialization, signatures included.
func (tx *Transaction) Hash() chainhash.Hash {
	return tx.hash
}

// TxID is the hex form of Hash.
func (tx *Transaction) TxID() string {
	return tx.hash.String()
}

// NumInputs returns the number of inputs.
func (tx *Transaction) NumInputs() int {
	return len(tx.inputs)
}

// NumOutputs returns the number of outputs.
func (tx *Transaction) NumOutputs() int {
	return len(tx.outputs)
}

// Input returns a copy of input i.
func (tx *Transaction) Input(i int) Input {
	in := tx.inputs[i]
	in.Signature = bytes.Clone(in.Signature)
	return in
}

// Inputs returns a copy of all inputs.
func (tx *Transaction) Inputs() []Input {
	return cloneInputs(tx.inputs)
}

// Output returns output i.
func (tx *Transaction) Output(i int) Output {
	return tx.outputs[i]
}

// OutputUTXO returns the identifier that output i receives once tx is accepted.
func (tx *Transaction) OutputUTXO(i int) UTXO {
	return NewUTXO(tx.hash, uint32(i))
}

// Outputs returns a copy of all outputs.
func (tx *Transaction) Outputs() []Output {
	return append([]Output(nil), tx.outputs...)
}

// OutputValue sums the declared output values. It fails with
// safe.ErrOverflow when the sum leaves the int64 range.
func (tx *Transaction) OutputValue() (btcutil.Amount, error) {
	values := make([]btcutil.Amount, len(tx.outputs))
	for i, out := range tx.outputs {
		values[i] = out.Value
	}
	return safe.Sum(values...)
}

// SignableBytes returns the message that the owner of the output spent by
// input i must sign: that input's outpoint followed by every output.
func (tx *Transaction) SignableBytes(i int) ([]byte, error) {
	if i < 0 || i >= len(tx.inputs) {
		return nil, fmt.Errorf("input index %d out of range [0,%d)", i, len(tx.inputs))
	}
	var buf bytes.Buffer
	in := tx.inputs[i]
	// bytes.Buffer writes never fail.
	_ = writeOutpoint(&buf, in)
	_ = writeOutputs(&buf, tx.outputs)
	return buf.Bytes(), nil
}

// WithSignature returns a new transaction with input i carrying sig.
func (tx *Transaction) WithSignature(i int, sig []byte) (*Transaction, error) {
	if i < 0 || i >= len(tx.inputs) {
		return nil, fmt.Errorf("input index %d out of range [0,%d)", i, len(tx.inputs))
	}
	inputs := cloneInputs(tx.inputs)
	inputs[i].Signature = bytes.Clone(sig)
	return NewTransaction(inputs, tx.outputs), nil
}

func (tx *Transaction) serialize() []byte {
	var buf bytes.Buffer
	_ = wire.WriteVarInt(&buf, encodingVersion, uint64(len(tx.inputs)))
	for _, in := range tx.inputs {
		_ = writeOutpoint(&buf, in)
		_ = wire.WriteVarBytes(&buf, encodingVersion, in.Signature)
	}
	_ = writeOutputs(&buf, tx.outputs)
	return buf.Bytes()
}

func writeOutpoint(w io.Writer, in Input) error {
	if _, err := w.Write(in.PrevTxHash[:]); err != nil {
		return err
	}
	return wire.WriteVarInt(w, encodingVersion, uint64(in.OutputIndex))
}

func writeOutputs(w io.Writer, outputs []Output) error {
	if err := wire.WriteVarInt(w, encodingVersion, uint64(len(outputs))); err != nil {
		return err
	}
	for _, out := range outputs {
		// Negative values keep a distinct encoding so they hash differently.
		if err := wire.WriteVarInt(w, encodingVersion, uint64(int64(out.Value))); err != nil {
			return err
		}
		if _, err := w.Write(out.Address[:]); err != nil {
			return err
		}
	}
	return nil
}

func cloneInputs(inputs []Input) []Input {
	out := make([]Input, len(inputs))
	for i, in := range inputs {
		in.Signature = bytes.Clone(in.Signature)
		out[i] = in
	}
	return out
}
