package formula

import "math"

// Evaluate computes the numeric value of a formula under the given variable
// binding. The formula is validated against the allowed vocabulary before
// any parsing happens; text that fails validation never reaches the parser.
//
// The result is always a finite real number. Division by zero or any other
// non-finite intermediate surfaces as an EvaluationError, never as
// Inf or NaN.
func Evaluate(formula string, vars Variables) (float64, error) {
	if err := Validate(formula, vars); err != nil {
		return 0, err
	}

	tokens, err := NewTokenizer(vars).Tokenize(formula)
	if err != nil {
		return 0, err
	}

	root, err := parse(tokens)
	if err != nil {
		return 0, err
	}

	result, err := root.eval(vars)
	if err != nil {
		return 0, err
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &EvaluationError{Reason: "result is not a finite number"}
	}
	return result, nil
}
