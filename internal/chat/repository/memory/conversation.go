package memory

import (
	"context"

	"book-agent/internal/model"
)

func (r *implRepository) GetConversation(ctx context.Context, threadID string) (model.Conversation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.seq[threadID]
	if !ok {
		return model.Conversation{}, false, nil
	}
	return cloneConversation(conv), true, nil
}

func (r *implRepository) SaveConversation(ctx context.Context, conv model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq[conv.ThreadID] = cloneConversation(conv)
	return nil
}

// cloneConversation copies the message slice so callers can keep mutating
// their conversation without aliasing stored state.
func cloneConversation(conv model.Conversation) model.Conversation {
	out := conv
	out.Messages = make([]model.Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	return out
}
