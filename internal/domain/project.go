package domain

import (
	"fmt"
	"math"
	"unicode"

	"github.com/mpaky95/cabinetry/internal/formula"
)

// Project is the variable-binding supplier: the per-project values the
// design workflow assembles before asking the engine for dimensions.
// The engine itself never sources variables.
type Project struct {
	Name      string            `json:"name" yaml:"name"`
	Variables formula.Variables `json:"variables" yaml:"variables"`
}

// Validate checks that every variable has an identifier-shaped name and a
// finite value. Non-finite values would defeat the engine's postcondition
// before evaluation even starts.
func (p Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if len(p.Variables) == 0 {
		return fmt.Errorf("project %s: at least one variable is required", p.Name)
	}
	for name, value := range p.Variables {
		if !validVariableName(name) {
			return fmt.Errorf("project %s: invalid variable name %q", p.Name, name)
		}
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return fmt.Errorf("project %s: variable %s is not finite", p.Name, name)
		}
	}
	return nil
}

func validVariableName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
