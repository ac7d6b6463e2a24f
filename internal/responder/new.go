package responder

import (
	"context"
	"fmt"

	"book-agent/internal/model"
	"book-agent/internal/router"
	"book-agent/pkg/gemini"
	pkgLog "book-agent/pkg/log"
)

// Responder produces the reply text for a turn.
type Responder interface {
	// Synthesize builds the reply for the classified intent. history includes
	// the latest user message; passages are the retrieval results, possibly
	// empty.
	Synthesize(ctx context.Context, intent router.Intent, history []model.Message, passages []model.Passage) (string, error)

	// Mode reports which synthesis mode is active: ModeTemplate replies are a
	// pure function of the inputs, ModeLLM replies are not.
	Mode() string
}

// Generator is the generation capability used in LLM mode.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

type implResponder struct {
	mode string
	llm  Generator
	l    pkgLog.Logger
}

// Ensure implResponder implements Responder interface
var _ Responder = (*implResponder)(nil)

// New creates a Responder in the given mode. LLM mode requires a Generator.
func New(mode string, llm Generator, l pkgLog.Logger) (*implResponder, error) {
	switch mode {
	case ModeTemplate:
	case ModeLLM:
		if llm == nil {
			return nil, fmt.Errorf("responder: llm mode requires a generator")
		}
	default:
		return nil, fmt.Errorf("responder: unknown mode %q", mode)
	}
	return &implResponder{mode: mode, llm: llm, l: l}, nil
}

func (r *implResponder) Mode() string {
	return r.mode
}
