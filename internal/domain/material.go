package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Material is a sheet good stock parts are cut from. Dimensions and price
// feed the purchase estimate, thickness typically feeds a T variable.
type Material struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Thickness     float64   `json:"thickness"`
	SheetWidth    float64   `json:"sheetWidth"`
	SheetHeight   float64   `json:"sheetHeight"`
	PricePerSheet float64   `json:"pricePerSheet,omitempty"`
}

func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("material name is required")
	}
	if m.Thickness <= 0 {
		return fmt.Errorf("material %s: thickness must be positive", m.Name)
	}
	if m.SheetWidth <= 0 || m.SheetHeight <= 0 {
		return fmt.Errorf("material %s: sheet dimensions must be positive", m.Name)
	}
	return nil
}
