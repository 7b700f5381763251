package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mpaky95/cabinetry/internal/dimension"
)

type PartCategory string

const (
	CategoryPanel     PartCategory = "panel"
	CategoryDoor      PartCategory = "door"
	CategoryShelf     PartCategory = "shelf"
	CategoryDrawerBox PartCategory = "drawer_box"
	CategoryBack      PartCategory = "back"
	CategoryStretcher PartCategory = "stretcher"
)

// Edge names one bandable edge of a part. Edge banding is stored metadata
// for the cutlist; the formula engine never computes it.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// edgeOrder fixes the order edges appear in a banding descriptor.
var edgeOrder = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

// Part is a cabinet component whose size is derived from formulas bound to
// per-project variables. Formula fields hold opaque text; they are parsed
// and checked on every evaluation, never at rest.
type Part struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Category    PartCategory           `json:"category"`
	Formulas    dimension.PartFormulas `json:"formulas"`
	EdgeBanding []Edge                 `json:"edgeBanding,omitempty"`
	Quantity    int                    `json:"quantity"`
}

// Validate checks the non-formula invariants of a part. Formula text is
// validated separately against a concrete variable binding.
func (p Part) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("part name is required")
	}
	if p.Quantity < 1 {
		return fmt.Errorf("part %s: quantity must be at least 1", p.Name)
	}
	seen := make(map[Edge]bool, len(p.EdgeBanding))
	for _, e := range p.EdgeBanding {
		if !validEdge(e) {
			return fmt.Errorf("part %s: unknown edge %q", p.Name, e)
		}
		if seen[e] {
			return fmt.Errorf("part %s: duplicate edge %q", p.Name, e)
		}
		seen[e] = true
	}
	return nil
}

// BandingDescriptor returns the part's banded edges in canonical order
// (top, bottom, left, right) regardless of input order.
func (p Part) BandingDescriptor() []Edge {
	set := make(map[Edge]bool, len(p.EdgeBanding))
	for _, e := range p.EdgeBanding {
		set[e] = true
	}
	var out []Edge
	for _, e := range edgeOrder {
		if set[e] {
			out = append(out, e)
		}
	}
	return out
}

func validEdge(e Edge) bool {
	for _, known := range edgeOrder {
		if e == known {
			return true
		}
	}
	return false
}
