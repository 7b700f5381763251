package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
	"github.com/mpaky95/cabinetry/internal/storage"
)

// catalogDoc is the indexed shape of one catalog entry: a part of a model.
// Formula text is deliberately not indexed; search covers names and
// categories only.
type catalogDoc struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	PartName  string `json:"part_name,omitempty"`
	Category  string `json:"category,omitempty"`
}

type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// Search performs a multi_match query over model names, part names and
// categories, weighted toward model names.
func (r *Searcher) Search(ctx context.Context, query string, size int) ([]storage.SearchHit, error) {
	if size < 1 {
		size = 10
	}

	or := operator.Or
	multiMatch := &types.MultiMatchQuery{
		Query:    query,
		Fields:   []string{"model_name^2.0", "part_name", "category"},
		Operator: &or,
	}

	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{MultiMatch: multiMatch}).
		Size(size).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch catalog query failed", "error", err, "query", query)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	hits := make([]storage.SearchHit, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		var doc catalogDoc
		if err := json.Unmarshal(h.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode catalog document: %w", err)
		}
		hit := storage.SearchHit{
			ModelID:   doc.ModelID,
			ModelName: doc.ModelName,
			PartName:  doc.PartName,
			Category:  doc.Category,
		}
		if h.Score_ != nil {
			hit.Score = float64(*h.Score_)
		}
		hits = append(hits, hit)
	}

	slog.Info("Es catalog search fetched", "query", query, "returned_count", len(hits))
	return hits, nil
}
