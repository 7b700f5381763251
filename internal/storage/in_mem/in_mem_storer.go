package in_mem

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/storage"
)

// Catalog is a map-backed catalog store used by tests and the cutlist CLI.
type Catalog struct {
	mu        sync.RWMutex
	models    map[uuid.UUID]domain.CabinetModel
	materials map[uuid.UUID]domain.Material
}

func NewCatalog() *Catalog {
	return &Catalog{
		models:    make(map[uuid.UUID]domain.CabinetModel),
		materials: make(map[uuid.UUID]domain.Material),
	}
}

func (c *Catalog) SaveModel(ctx context.Context, model domain.CabinetModel) (uuid.UUID, error) {
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[model.ID] = model
	return model.ID, nil
}

func (c *Catalog) SaveMaterial(ctx context.Context, material domain.Material) (uuid.UUID, error) {
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials[material.ID] = material
	return material.ID, nil
}

func (c *Catalog) GetModel(ctx context.Context, id uuid.UUID) (*domain.CabinetModel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	model, ok := c.models[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &model, nil
}

func (c *Catalog) ListModels(ctx context.Context) ([]domain.CabinetModel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	models := make([]domain.CabinetModel, 0, len(c.models))
	for _, m := range c.models {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

func (c *Catalog) GetMaterial(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	material, ok := c.materials[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &material, nil
}
