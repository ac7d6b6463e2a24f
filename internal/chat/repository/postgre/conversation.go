package postgre

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"book-agent/internal/chat/repository"
	"book-agent/internal/model"
)

func (r *implRepository) GetConversation(ctx context.Context, threadID string) (model.Conversation, bool, error) {
	const query = `SELECT messages FROM conversations WHERE thread_id = $1`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, threadID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Conversation{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.postgre.GetConversation: %v", err)
		return model.Conversation{}, false, repository.ErrFailedToGetConversation
	}

	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		r.l.Errorf(ctx, "chat.repository.postgre.GetConversation: decode messages: %v", err)
		return model.Conversation{}, false, repository.ErrFailedToGetConversation
	}

	return model.Conversation{
		ThreadID: threadID,
		Messages: messages,
	}, true, nil
}

func (r *implRepository) SaveConversation(ctx context.Context, conv model.Conversation) error {
	const query = `
		INSERT INTO conversations (id, thread_id, messages, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (thread_id)
		DO UPDATE SET messages = EXCLUDED.messages, updated_at = now()`

	raw, err := json.Marshal(conv.Messages)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.postgre.SaveConversation: encode messages: %v", err)
		return repository.ErrFailedToSaveConversation
	}

	if _, err := r.pool.Exec(ctx, query, uuid.New(), conv.ThreadID, raw); err != nil {
		r.l.Errorf(ctx, "chat.repository.postgre.SaveConversation: %v", err)
		return repository.ErrFailedToSaveConversation
	}
	return nil
}
