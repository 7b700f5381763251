package formula

import "fmt"

// InvalidFormulaError reports text that failed the allow-list check. It is
// the security-relevant failure: the formula referenced something outside
// the declared vocabulary and must never reach the evaluator.
type InvalidFormulaError struct {
	Pos    int
	Reason string
}

func (e *InvalidFormulaError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("invalid formula at position %d: %s", e.Pos, e.Reason)
	}
	return "invalid formula: " + e.Reason
}

// SyntaxError reports a formula whose vocabulary is allowed but whose token
// sequence is not a well-formed expression: unbalanced parentheses, dangling
// operators, wrong function arity.
type SyntaxError struct {
	Pos    int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Reason)
}

// UnboundVariableError reports a variable token that has no value in the
// binding at evaluation time. It indicates validation and evaluation ran
// against different bindings and is never silently treated as zero.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "unbound variable: " + e.Name
}

// EvaluationError reports a computation whose result is not a finite real
// number, such as division by zero.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return "evaluation failed: " + e.Reason
}
