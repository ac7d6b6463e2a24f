package retrieval

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"book-agent/internal/model"
	pkgLog "book-agent/pkg/log"
	"book-agent/pkg/search"
)

// Retriever fetches grounding passages for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, limit int) []model.Passage
}

// SearchClient is the raw search capability the retriever wraps.
type SearchClient interface {
	Search(ctx context.Context, query string, limit int) ([]search.Record, error)
}

// Config tunes the retriever's result cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implRetriever struct {
	client SearchClient
	cache  *lru.LRU[string, []model.Passage]
	l      pkgLog.Logger
}

// Ensure implRetriever implements Retriever interface
var _ Retriever = (*implRetriever)(nil)

// New creates a fail-open Retriever over the given search client.
func New(client SearchClient, cfg Config, l pkgLog.Logger) *implRetriever {
	var cache *lru.LRU[string, []model.Passage]
	if cfg.CacheSize > 0 {
		cache = lru.NewLRU[string, []model.Passage](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return &implRetriever{
		client: client,
		cache:  cache,
		l:      l,
	}
}
