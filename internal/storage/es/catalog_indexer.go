package es

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mpaky95/cabinetry/internal/domain"
)

// Indexer publishes catalog entries into the search index whenever a model
// is saved. One document is indexed per part so part names are searchable
// individually.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewIndexer(config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Indexer{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// IndexModel indexes one document per part of the model, keyed by
// modelID/partName so re-indexing a model overwrites its entries.
func (e *Indexer) IndexModel(ctx context.Context, model domain.CabinetModel) error {
	for _, part := range model.Parts {
		doc := catalogDoc{
			ModelID:   model.ID.String(),
			ModelName: model.Name,
			PartName:  part.Name,
			Category:  string(part.Category),
		}
		docID := doc.ModelID + "/" + part.Name

		res, err := e.client.Index(e.indexName).Id(docID).Document(doc).Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to index catalog document %s: %w", docID, err)
		}
		slog.Debug("catalog document indexed", "id", docID, "index", e.indexName, "result", res.Result)
	}

	slog.Info("model indexed for catalog search", "model", model.Name, "parts", len(model.Parts))
	return nil
}
