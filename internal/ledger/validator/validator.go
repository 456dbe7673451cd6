// Package validator checks a single transaction against a read-only view of
// the UTXO pool.
package validator

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/crypto"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/pool"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// Validator is stateless apart from its signature oracle and never mutates the view.
type Validator struct {
	verifier crypto.Verifier
}

// New returns a Validator that authorizes spends with verifier.
func New(verifier crypto.Verifier) *Validator {
	return &Validator{verifier: verifier}
}

// IsValid reports whether tx passes every rule against view.
func (v *Validator) IsValid(tx *model.Transaction, view pool.View) bool {
	return v.Check(tx, view) == nil
}

// Check returns nil when tx is valid against view, or a RuleError naming the
// first rule that failed. Inputs are checked in order for existence, then
// signature, then duplication; outputs are checked afterwards, then value
// conservation.
func (v *Validator) Check(tx *model.Transaction, view pool.View) error {
	if tx == nil {
		return RuleError{Rule: ErrNilTransaction}
	}

	var inputValue btcutil.Amount
	claimed := make(map[model.UTXO]struct{}, tx.NumInputs())

	for i := 0; i < tx.NumInputs(); i++ {
		in := tx.Input(i)
		id := in.UTXO()

		if !view.Contains(id) {
			return ruleError(ErrMissingInput, "input %d spends %s", i, id)
		}
		spent, err := view.Get(id)
		if err != nil {
			return ruleError(ErrMissingInput, "input %d: %v", i, err)
		}

		msg, err := tx.SignableBytes(i)
		if err != nil {
			return ruleError(ErrInvalidSignature, "input %d: %v", i, err)
		}
		if !v.verifier.Verify(spent.Address, msg, in.Signature) {
			return ruleError(ErrInvalidSignature, "input %d spending %s owned by %s", i, id, spent.Address.Short())
		}

		if _, dup := claimed[id]; dup {
			return ruleError(ErrDuplicateInput, "input %d claims %s again", i, id)
		}
		claimed[id] = struct{}{}

		if inputValue, err = safe.Add(inputValue, spent.Value); err != nil {
			return ruleError(ErrValueOverflow, "input value at input %d", i)
		}
	}

	var outputValue btcutil.Amount
	for i := 0; i < tx.NumOutputs(); i++ {
		out := tx.Output(i)
		if out.Value < 0 {
			return ruleError(ErrNegativeOutput, "output %d has value %d", i, int64(out.Value))
		}
		var err error
		if outputValue, err = safe.Add(outputValue, out.Value); err != nil {
			return ruleError(ErrValueOverflow, "output value at output %d", i)
		}
	}

	if inputValue < outputValue {
		return ruleError(ErrInsufficientFunds, "inputs %d, outputs %d", int64(inputValue), int64(outputValue))
	}
	return nil
}
