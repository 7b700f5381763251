package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/mpaky95/cabinetry/internal/domain"
)

// Reader loads catalog entities for evaluation and cutlist generation.
type Reader interface {
	GetModel(ctx context.Context, id uuid.UUID) (*domain.CabinetModel, error)
	ListModels(ctx context.Context) ([]domain.CabinetModel, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*domain.Material, error)
}
