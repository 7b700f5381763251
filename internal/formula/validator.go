package formula

import "strings"

// Validate checks formula text against the allowed vocabulary: the caller's
// variable names, the registered functions, decimal numbers and the operator
// characters. It is purely lexical. Balanced parentheses, arity and
// division by zero are evaluation-time concerns; Validate only guarantees
// the text cannot reference anything outside the declared vocabulary, so
// stored or user-entered formulas can never smuggle code past the engine.
//
// Validate is deterministic and side-effect free: the same formula and
// binding always produce the same verdict.
func Validate(formula string, vars Variables) error {
	trimmed := strings.TrimSpace(formula)
	if trimmed == "" {
		return &InvalidFormulaError{Reason: "formula is empty"}
	}
	if len(trimmed) > MaxFormulaLength {
		return &InvalidFormulaError{Reason: "formula exceeds maximum length"}
	}

	_, err := NewTokenizer(vars).Tokenize(trimmed)
	return err
}
