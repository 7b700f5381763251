package storage

import "context"

// SearchHit is one catalog search result: a model or part matched by name
// or category.
type SearchHit struct {
	ModelID   string  `json:"modelId"`
	ModelName string  `json:"modelName"`
	PartName  string  `json:"partName,omitempty"`
	Category  string  `json:"category,omitempty"`
	Score     float64 `json:"score"`
}

// Searcher provides text search over the catalog for the admin surface.
// It is an index over names and categories only; formulas are never
// searchable content.
type Searcher interface {
	Search(ctx context.Context, query string, size int) ([]SearchHit, error)
}
