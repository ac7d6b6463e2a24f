package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"book-agent/internal/chat/repository"
	"book-agent/pkg/log"
)

type implRepository struct {
	l    log.Logger
	pool *pgxpool.Pool
}

// New returns a conversation repository backed by PostgreSQL.
func New(pool *pgxpool.Pool, l log.Logger) repository.ConversationRepository {
	return &implRepository{
		l:    l,
		pool: pool,
	}
}

// EnsureSchema creates the conversations table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS conversations (
			id         UUID        NOT NULL,
			thread_id  TEXT        PRIMARY KEY,
			messages   JSONB       NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure conversations schema: %w", err)
	}
	return nil
}
