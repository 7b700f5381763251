package cutlist

import (
	"fmt"

	"github.com/mpaky95/cabinetry/internal/dimension"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/formula"
)

// Row is one line of a cutlist: a part with its computed dimensions and
// banding descriptor.
type Row struct {
	PartName    string               `json:"partName"`
	Category    domain.PartCategory  `json:"category"`
	Dimensions  dimension.Dimensions `json:"dimensions"`
	Quantity    int                  `json:"quantity"`
	EdgeBanding []domain.Edge        `json:"edgeBanding,omitempty"`
}

// Cutlist is the evaluated cut program for one model under one project's
// variables.
type Cutlist struct {
	ModelName string `json:"modelName"`
	Project   string `json:"project"`
	Rows      []Row  `json:"rows"`
}

// Generate evaluates every part of a model under the project's variable
// binding. It stops at the first part whose formulas fail; the error names
// the part and the failing axis.
func Generate(model domain.CabinetModel, project domain.Project) (Cutlist, error) {
	if err := project.Validate(); err != nil {
		return Cutlist{}, err
	}

	list := Cutlist{
		ModelName: model.Name,
		Project:   project.Name,
		Rows:      make([]Row, 0, len(model.Parts)),
	}
	for _, part := range model.Parts {
		dims, err := dimension.Assemble(part.Formulas, project.Variables)
		if err != nil {
			return Cutlist{}, fmt.Errorf("part %s: %w", part.Name, err)
		}
		list.Rows = append(list.Rows, Row{
			PartName:    part.Name,
			Category:    part.Category,
			Dimensions:  dims,
			Quantity:    part.Quantity,
			EdgeBanding: part.BandingDescriptor(),
		})
	}
	return list, nil
}

// ValidateModelFormulas runs the validator over every formula of a model
// against a binding, without evaluating. This is the data-entry check the
// admin surface uses before persisting a model.
func ValidateModelFormulas(model domain.CabinetModel, vars formula.Variables) error {
	for _, part := range model.Parts {
		for _, axis := range []struct {
			name string
			text string
		}{
			{"width", part.Formulas.Width},
			{"height", part.Formulas.Height},
			{"depth", part.Formulas.Depth},
		} {
			if axis.text == "" {
				continue
			}
			if err := formula.Validate(axis.text, vars); err != nil {
				return fmt.Errorf("part %s, %s formula: %w", part.Name, axis.name, err)
			}
		}
	}
	return nil
}
