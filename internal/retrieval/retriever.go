package retrieval

import (
	"context"
	"fmt"

	"book-agent/internal/model"
	"book-agent/pkg/search"
)

// Retrieve performs an authenticated search and normalizes the results.
//
// Fail-open: any transport error, non-2xx status, timeout, or malformed
// payload degrades to an empty passage list. A missing grounding passage
// downgrades one reply; a propagated retrieval error would abort the turn.
func (r *implRetriever) Retrieve(ctx context.Context, query string, limit int) []model.Passage {
	key := cacheKey(query, limit)
	if r.cache != nil {
		if passages, ok := r.cache.Get(key); ok {
			return passages
		}
	}

	records, err := r.client.Search(ctx, query, limit)
	if err != nil {
		r.l.Warnf(ctx, "retrieval: search failed, degrading to no grounding: %v", err)
		return []model.Passage{}
	}

	passages := make([]model.Passage, 0, len(records))
	for _, rec := range records {
		passages = append(passages, model.Passage{
			BookID:     rec.BookID,
			Content:    rec.Content,
			PageNumber: rec.PageNumber,
			Score:      rec.SimilarityScore,
		})
	}

	if r.cache != nil && len(passages) > 0 {
		r.cache.Add(key, passages)
	}
	return passages
}

func cacheKey(query string, limit int) string {
	return fmt.Sprintf("%d|%s", limit, query)
}

var _ SearchClient = (*search.Client)(nil)
