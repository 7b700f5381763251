package formula

import "math"

// Func is an allow-listed numeric function with a fixed arity.
type Func struct {
	Name  string
	Arity int
	Call  func(args []float64) float64
}

// allowedFunctions is the process-wide function registry. It is built once
// and never mutated, so concurrent evaluations need no locking. round uses
// half-away-from-zero semantics (math.Round): round(3.5) == 4, round(-3.5) == -4.
var allowedFunctions = map[string]Func{
	"min": {
		Name:  "min",
		Arity: 2,
		Call:  func(args []float64) float64 { return math.Min(args[0], args[1]) },
	},
	"max": {
		Name:  "max",
		Arity: 2,
		Call:  func(args []float64) float64 { return math.Max(args[0], args[1]) },
	},
	"round": {
		Name:  "round",
		Arity: 1,
		Call:  func(args []float64) float64 { return math.Round(args[0]) },
	},
	"floor": {
		Name:  "floor",
		Arity: 1,
		Call:  func(args []float64) float64 { return math.Floor(args[0]) },
	},
	"ceil": {
		Name:  "ceil",
		Arity: 1,
		Call:  func(args []float64) float64 { return math.Ceil(args[0]) },
	},
}

// LookupFunc returns the allow-listed function with the given name.
func LookupFunc(name string) (Func, bool) {
	fn, ok := allowedFunctions[name]
	return fn, ok
}

// FuncNames returns the names of all allow-listed functions.
func FuncNames() []string {
	names := make([]string, 0, len(allowedFunctions))
	for name := range allowedFunctions {
		names = append(names, name)
	}
	return names
}
