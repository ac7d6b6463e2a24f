package model

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation message. Immutable once created.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the full state of one chat thread.
// Messages are append-only; the repository owns the persisted copy and the
// orchestrator works on a transient copy during a single turn.
type Conversation struct {
	ThreadID string    `json:"thread_id"`
	Messages []Message `json:"messages"`

	// LastRetrieved holds the passages fetched during the most recent turn.
	// Transient synthesis input, not persisted.
	LastRetrieved []Passage `json:"-"`
}

// Append adds a message to the conversation history.
func (c *Conversation) Append(role Role, content string, at time.Time) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content, Timestamp: at})
}

// Passage is one retrieved unit of source content used to ground a reply.
type Passage struct {
	BookID     string  `json:"book_id"`
	Content    string  `json:"content"`
	PageNumber string  `json:"page_number,omitempty"`
	Score      float64 `json:"similarity_score,omitempty"`
}
