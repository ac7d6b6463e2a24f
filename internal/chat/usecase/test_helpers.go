package usecase

import (
	"context"
	"sync"

	"book-agent/internal/model"
	"book-agent/internal/responder"
	"book-agent/internal/router"
)

// mockLogger implements log.Logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is a race-safe in-memory repository with injectable failures.
type mockRepo struct {
	mu      sync.Mutex
	data    map[string]model.Conversation
	getErr  error
	saveErr error
	saves   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{data: make(map[string]model.Conversation)}
}

func (m *mockRepo) GetConversation(ctx context.Context, threadID string) (model.Conversation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return model.Conversation{}, false, m.getErr
	}
	conv, ok := m.data[threadID]
	if !ok {
		return model.Conversation{}, false, nil
	}
	out := conv
	out.Messages = append([]model.Message(nil), conv.Messages...)
	return out, true, nil
}

func (m *mockRepo) SaveConversation(ctx context.Context, conv model.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	stored := conv
	stored.Messages = append([]model.Message(nil), conv.Messages...)
	m.data[conv.ThreadID] = stored
	m.saves++
	return nil
}

type mockRetriever struct {
	mu        sync.Mutex
	calls     int
	lastLimit int
	passages  []model.Passage
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, limit int) []model.Passage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastLimit = limit
	if m.passages == nil {
		return []model.Passage{}
	}
	return m.passages
}

type mockResponder struct {
	mu          sync.Mutex
	mode        string
	reply       string
	err         error
	lastIntent  router.Intent
	lastHistory []model.Message
}

func (m *mockResponder) Synthesize(ctx context.Context, intent router.Intent, history []model.Message, passages []model.Passage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastIntent = intent
	m.lastHistory = append([]model.Message(nil), history...)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockResponder) Mode() string {
	if m.mode == "" {
		return responder.ModeTemplate
	}
	return m.mode
}
