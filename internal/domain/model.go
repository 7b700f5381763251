package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CabinetModel groups the parts of one cabinet type. Its parts carry the
// dimension formulas; a project supplies the variable values.
type CabinetModel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Parts       []Part    `json:"parts"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (m CabinetModel) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("model name is required")
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("model %s: at least one part is required", m.Name)
	}
	for _, p := range m.Parts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	return nil
}
