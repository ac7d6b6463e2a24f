package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"book-agent/config"
	"book-agent/internal/chat/repository"
	"book-agent/internal/chat/repository/memory"
	"book-agent/internal/chat/repository/postgre"
	"book-agent/pkg/log"
)

// newConversationStore builds the repository named by cfg.Backend.
//
// When postgres is configured but unreachable, cfg.AllowDegraded decides:
// true falls back to the memory backend and says so through Availability,
// false fails startup. There is no silent fallback.
func newConversationStore(ctx context.Context, cfg config.StoreConfig, l log.Logger) (repository.ConversationRepository, repository.Availability, error) {
	switch cfg.Backend {
	case repository.BackendMemory:
		return memory.New(l), repository.Availability{Backend: repository.BackendMemory}, nil

	case repository.BackendPostgres:
		repo, err := newPostgresStore(ctx, cfg.PostgresDSN, l)
		if err == nil {
			return repo, repository.Availability{Backend: repository.BackendPostgres}, nil
		}
		if !cfg.AllowDegraded {
			return nil, repository.Availability{}, err
		}
		return memory.New(l), repository.Availability{
			Backend:  repository.BackendMemory,
			Degraded: true,
			Reason:   err.Error(),
		}, nil

	default:
		return nil, repository.Availability{}, fmt.Errorf("%w: %q", repository.ErrUnknownBackend, cfg.Backend)
	}
}

func newPostgresStore(ctx context.Context, dsn string, l log.Logger) (repository.ConversationRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := postgre.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return postgre.New(pool, l), nil
}
