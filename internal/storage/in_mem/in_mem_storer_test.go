package in_mem

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mpaky95/cabinetry/internal/dimension"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SaveAndGetModel(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog()

	model := domain.CabinetModel{
		Name: "wall-cabinet",
		Parts: []domain.Part{
			{
				Name:     "side",
				Category: domain.CategoryPanel,
				Formulas: dimension.PartFormulas{Width: "D", Height: "H"},
				Quantity: 2,
			},
		},
	}

	id, err := catalog.SaveModel(ctx, model)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := catalog.GetModel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "wall-cabinet", got.Name)
	require.Len(t, got.Parts, 1)
	assert.Equal(t, "D", got.Parts[0].Formulas.Width)
}

func TestCatalog_GetModel_NotFound(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.GetModel(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestCatalog_ListModels_SortedByName(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog()

	for _, name := range []string{"tall-pantry", "base-cabinet", "wall-cabinet"} {
		_, err := catalog.SaveModel(ctx, domain.CabinetModel{
			Name:  name,
			Parts: []domain.Part{{Name: "side", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	models, err := catalog.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, models, 3)
	assert.Equal(t, "base-cabinet", models[0].Name)
	assert.Equal(t, "tall-pantry", models[1].Name)
	assert.Equal(t, "wall-cabinet", models[2].Name)
}

func TestCatalog_Materials(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog()

	id, err := catalog.SaveMaterial(ctx, domain.Material{
		Name:        "19mm birch ply",
		Thickness:   0.75,
		SheetWidth:  48,
		SheetHeight: 96,
	})
	require.NoError(t, err)

	material, err := catalog.GetMaterial(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.75, material.Thickness)
}
