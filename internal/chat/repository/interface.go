package repository

import (
	"context"

	"book-agent/internal/model"
)

// ConversationRepository persists per-thread conversation state.
//
// Writes are last-writer-wins on thread_id. Callers that need
// read-modify-write atomicity serialize turns above this layer.
type ConversationRepository interface {
	// GetConversation returns the conversation for threadID. The second
	// return value is false when the thread has no history yet; that is
	// not an error.
	GetConversation(ctx context.Context, threadID string) (model.Conversation, bool, error)
	// SaveConversation stores the full conversation, replacing any prior
	// state for the same thread.
	SaveConversation(ctx context.Context, conv model.Conversation) error
}

// Availability reports which backend actually serves conversation state.
// A degraded repository still works, but memory is process-local and lost
// on restart; callers surface this, never hide it.
type Availability struct {
	Backend  string // "memory" or "postgres"
	Degraded bool   // true when the configured backend was replaced
	Reason   string // why, when Degraded
}
