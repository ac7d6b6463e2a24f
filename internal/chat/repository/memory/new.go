package memory

import (
	"sync"

	"book-agent/internal/chat/repository"
	"book-agent/internal/model"
	"book-agent/pkg/log"
)

type implRepository struct {
	l   log.Logger
	mu  sync.RWMutex
	seq map[string]model.Conversation
}

// New returns an in-process conversation repository. State lives in a
// map guarded by a RWMutex and disappears when the process exits.
func New(l log.Logger) repository.ConversationRepository {
	return &implRepository{
		l:   l,
		seq: make(map[string]model.Conversation),
	}
}
