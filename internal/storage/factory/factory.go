package factory

import (
	"context"
	"fmt"

	"github.com/mpaky95/cabinetry/internal/storage"
	"github.com/mpaky95/cabinetry/internal/storage/es"
	"github.com/mpaky95/cabinetry/internal/storage/in_mem"
	"github.com/mpaky95/cabinetry/internal/storage/pg"
)

// NewCatalog creates the catalog store and reader for the configured
// backend. PG is the system of record; InMem backs tests and the CLI.
func NewCatalog(ctx context.Context, cfg *StorageConfig) (storage.Storer, storage.Reader, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("postgres storage selected but not configured")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		catalog, err := pg.NewCatalog(pool)
		if err != nil {
			return nil, nil, err
		}
		return catalog, catalog, nil

	case storage.InMem:
		catalog := in_mem.NewCatalog()
		return catalog, catalog, nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewSearcher creates the catalog search backend. Only Elasticsearch serves
// catalog search; other backends report unsupported.
func NewSearcher(ctx context.Context, cfg *StorageConfig) (storage.Searcher, error) {
	if cfg.Es == nil {
		return nil, fmt.Errorf("catalog search requires elasticsearch configuration")
	}
	searcher, err := es.NewSearcher(*cfg.Es)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch searcher: %w", err)
	}
	return searcher, nil
}

// NewIndexer creates the catalog search indexer, or nil when search is not
// configured. Saving models still works without an index.
func NewIndexer(ctx context.Context, cfg *StorageConfig) (*es.Indexer, error) {
	if cfg.Es == nil {
		return nil, nil
	}
	indexer, err := es.NewIndexer(*cfg.Es)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch indexer: %w", err)
	}
	return indexer, nil
}
