package validator

import (
	"errors"
	"fmt"
)

// Rule violations reported by Check. Match with errors.Is.
var (
	ErrNilTransaction    = errors.New("transaction is nil")
	ErrMissingInput      = errors.New("referenced utxo is not in the pool")
	ErrInvalidSignature  = errors.New("input signature does not authorize the spend")
	ErrDuplicateInput    = errors.New("utxo claimed more than once")
	ErrNegativeOutput    = errors.New("output value is negative")
	ErrInsufficientFunds = errors.New("output value exceeds input value")
	ErrValueOverflow     = errors.New("value sum overflows")
)

var reasons = map[error]string{
	ErrNilTransaction:    "nil_transaction",
	ErrMissingInput:      "missing_input",
	ErrInvalidSignature:  "invalid_signature",
	ErrDuplicateInput:    "duplicate_input",
	ErrNegativeOutput:    "negative_output",
	ErrInsufficientFunds: "insufficient_funds",
	ErrValueOverflow:     "value_overflow",
}

// RuleError describes why a transaction was rejected.
type RuleError struct {
	Rule    error
	Message string
}

func (e RuleError) Error() string {
	if e.Message == "" {
		return e.Rule.Error()
	}
	return e.Rule.Error() + ": " + e.Message
}

// Unwrap lets errors.Is match the rule sentinel.
func (e RuleError) Unwrap() error {
	return e.Rule
}

func ruleError(rule error, format string, args ...any) error {
	return RuleError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// Reason maps err to a short label suitable for metrics and reports.
// It returns "" for nil and "unknown" for errors that are not rule violations.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var re RuleError
	if errors.As(err, &re) {
		if r, ok := reasons[re.Rule]; ok {
			return r
		}
	}
	return "unknown"
}
