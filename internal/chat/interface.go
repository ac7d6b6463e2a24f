package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessTurn runs one conversation turn: load state, classify, retrieve
	// grounding if needed, synthesize a reply, persist, return the reply.
	// Internal failures degrade to an apologetic reply; an error return means
	// the input itself was unusable.
	ProcessTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
}
