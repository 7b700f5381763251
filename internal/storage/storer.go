package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/mpaky95/cabinetry/internal/domain"
)

// Storer persists catalog entities. Formula text is stored as opaque
// strings; the engine re-validates it on every evaluation call.
type Storer interface {
	SaveModel(ctx context.Context, model domain.CabinetModel) (uuid.UUID, error)
	SaveMaterial(ctx context.Context, material domain.Material) (uuid.UUID, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrNotFound          StorerError = "not found"
)

func (e StorerError) Error() string {
	return string(e)
}
