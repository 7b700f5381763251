package dimension

import (
	"fmt"

	"github.com/mpaky95/cabinetry/internal/formula"
)

// PartFormulas holds the per-axis formulas of one part. An empty string
// means the axis has no formula; parts like edge banding strips legitimately
// carry only two axes.
type PartFormulas struct {
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	Depth  string `json:"depth,omitempty"`
}

// Dimensions is the computed size of one part. A nil axis means no formula
// was supplied for it, which callers must distinguish from a computed zero.
type Dimensions struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Assemble evaluates each present axis formula under the given binding.
// It short-circuits on the first failing axis; the returned error names
// the axis so multi-axis parts sharing one bad variable set are still
// diagnosable.
func Assemble(f PartFormulas, vars formula.Variables) (Dimensions, error) {
	var dims Dimensions

	axes := []struct {
		name    string
		formula string
		target  **float64
	}{
		{"width", f.Width, &dims.Width},
		{"height", f.Height, &dims.Height},
		{"depth", f.Depth, &dims.Depth},
	}

	for _, axis := range axes {
		if axis.formula == "" {
			continue
		}
		v, err := formula.Evaluate(axis.formula, vars)
		if err != nil {
			return Dimensions{}, fmt.Errorf("%s: %w", axis.name, err)
		}
		*axis.target = &v
	}
	return dims, nil
}
