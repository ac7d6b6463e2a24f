package router

// Router is the interface for intent classification.
type Router interface {
	Classify(utterance string) Intent
}

// KeywordRouter classifies user intent with a fixed keyword rule table.
type KeywordRouter struct{}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter.
func New() *KeywordRouter {
	return &KeywordRouter{}
}
