package repository

import "errors"

var (
	ErrFailedToGetConversation  = errors.New("failed to get conversation")
	ErrFailedToSaveConversation = errors.New("failed to save conversation")
	ErrUnknownBackend           = errors.New("unknown store backend")
)
