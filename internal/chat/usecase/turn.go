package usecase

import (
	"context"
	"strings"
	"time"

	"book-agent/internal/chat"
	"book-agent/internal/model"
)

// ProcessTurn runs one turn through the fixed pipeline:
// load -> classify -> retrieve (query intents only) -> synthesize -> persist.
//
// The per-thread lock spans the whole pipeline, so concurrent turns on the
// same thread serialize and no history update is lost. Failures after the
// load step degrade to chat.ApologyReply and leave the stored conversation
// exactly as it was; the reply for a failed turn is never recorded.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	if strings.TrimSpace(input.ThreadID) == "" {
		return chat.TurnOutput{}, chat.ErrEmptyThreadID
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	start := uc.clock()
	unlock := uc.locks.Lock(input.ThreadID)
	defer unlock()

	conv, found, err := uc.repo.GetConversation(ctx, input.ThreadID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn: load thread %s: %v", input.ThreadID, err)
		return chat.TurnOutput{Reply: chat.ApologyReply}, nil
	}
	if !found {
		conv = model.Conversation{ThreadID: input.ThreadID}
	}
	conv.Append(model.RoleUser, input.Message, uc.clock())

	intent := uc.router.Classify(input.Message)

	var passages []model.Passage
	if !intent.Social() {
		passages = uc.retriever.Retrieve(ctx, input.Message, uc.retrieveLimit())
		conv.LastRetrieved = passages
	}

	reply, err := uc.responder.Synthesize(ctx, intent, conv.Messages, passages)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn: synthesize for thread %s: %v", input.ThreadID, err)
		return chat.TurnOutput{Reply: chat.ApologyReply}, nil
	}

	conv.Append(model.RoleAssistant, reply, uc.clock())
	if err := uc.repo.SaveConversation(ctx, conv); err != nil {
		// The reply exists but the memory promise is broken; do not pretend
		// the turn was recorded.
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn: persist thread %s: %v", input.ThreadID, err)
		return chat.TurnOutput{Reply: chat.ApologyReply}, nil
	}

	uc.l.Infof(ctx, "chat.usecase.ProcessTurn: thread=%s intent=%s passages=%d messages=%d duration=%s message=%q reply=%q",
		input.ThreadID, intent, len(passages), len(conv.Messages), time.Since(start), input.Message, reply)

	return chat.TurnOutput{Reply: reply}, nil
}
