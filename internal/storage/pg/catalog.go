package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/storage"
)

// Catalog persists cabinet models, parts and materials. Formula columns are
// plain text: the engine treats stored formulas as opaque and re-validates
// them on every evaluation, so nothing here inspects formula content.
type Catalog struct {
	db *pgxpool.Pool
}

func NewCatalog(pool *ConnectionPool) (*Catalog, error) {
	return &Catalog{db: pool.conn}, nil
}

func (c *Catalog) SaveModel(ctx context.Context, model domain.CabinetModel) (uuid.UUID, error) {
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmd := `
        INSERT INTO cabinet_models (id, name, description, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET name = $2, description = $3
        RETURNING id;
    `
	var id uuid.UUID
	if err := tx.QueryRow(ctx, cmd, model.ID, model.Name, model.Description, model.CreatedAt).Scan(&id); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert model: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM parts WHERE model_id = $1`, id); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to clear model parts: %w", err)
	}

	rows := make([][]interface{}, len(model.Parts))
	for i, p := range model.Parts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		edges := make([]string, 0, len(p.EdgeBanding))
		for _, e := range p.BandingDescriptor() {
			edges = append(edges, string(e))
		}
		rows[i] = []interface{}{
			p.ID,
			id,
			p.Name,
			string(p.Category),
			nullIfEmpty(p.Formulas.Width),
			nullIfEmpty(p.Formulas.Height),
			nullIfEmpty(p.Formulas.Depth),
			edges,
			p.Quantity,
			i,
		}
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"parts"},
		[]string{"id", "model_id", "name", "category", "formula_width", "formula_height", "formula_depth", "edge_banding", "quantity", "position"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert parts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to commit model: %w", err)
	}
	return id, nil
}

func (c *Catalog) SaveMaterial(ctx context.Context, material domain.Material) (uuid.UUID, error) {
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}

	cmd := `
        INSERT INTO materials (id, name, thickness, sheet_width, sheet_height, price_per_sheet)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            name = $2, thickness = $3, sheet_width = $4, sheet_height = $5, price_per_sheet = $6
        RETURNING id;
    `
	var id uuid.UUID
	err := c.db.QueryRow(ctx, cmd,
		material.ID,
		material.Name,
		material.Thickness,
		material.SheetWidth,
		material.SheetHeight,
		material.PricePerSheet,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert material: %w", err)
	}
	return id, nil
}

func (c *Catalog) GetModel(ctx context.Context, id uuid.UUID) (*domain.CabinetModel, error) {
	var model domain.CabinetModel
	err := c.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), created_at FROM cabinet_models WHERE id = $1`,
		id,
	).Scan(&model.ID, &model.Name, &model.Description, &model.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	parts, err := c.loadParts(ctx, id)
	if err != nil {
		return nil, err
	}
	model.Parts = parts
	return &model, nil
}

func (c *Catalog) ListModels(ctx context.Context) ([]domain.CabinetModel, error) {
	rows, err := c.db.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), created_at FROM cabinet_models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	var models []domain.CabinetModel
	for rows.Next() {
		var m domain.CabinetModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read models: %w", err)
	}

	for i := range models {
		parts, err := c.loadParts(ctx, models[i].ID)
		if err != nil {
			return nil, err
		}
		models[i].Parts = parts
	}
	return models, nil
}

func (c *Catalog) GetMaterial(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	var m domain.Material
	err := c.db.QueryRow(ctx,
		`SELECT id, name, thickness, sheet_width, sheet_height, COALESCE(price_per_sheet, 0)
         FROM materials WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Thickness, &m.SheetWidth, &m.SheetHeight, &m.PricePerSheet)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load material: %w", err)
	}
	return &m, nil
}

func (c *Catalog) loadParts(ctx context.Context, modelID uuid.UUID) ([]domain.Part, error) {
	rows, err := c.db.Query(ctx, `
        SELECT id, name, category,
               COALESCE(formula_width, ''), COALESCE(formula_height, ''), COALESCE(formula_depth, ''),
               edge_banding, quantity
        FROM parts WHERE model_id = $1 ORDER BY position`,
		modelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load parts: %w", err)
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		var category string
		var edges []string
		if err := rows.Scan(
			&p.ID, &p.Name, &category,
			&p.Formulas.Width, &p.Formulas.Height, &p.Formulas.Depth,
			&edges, &p.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		p.Category = domain.PartCategory(category)
		for _, e := range edges {
			p.EdgeBanding = append(p.EdgeBanding, domain.Edge(e))
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parts: %w", err)
	}
	return parts, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
