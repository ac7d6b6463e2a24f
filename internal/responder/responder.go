package responder

import (
	"context"
	"fmt"
	"strings"

	"book-agent/internal/model"
	"book-agent/internal/router"
	"book-agent/pkg/gemini"
)

// Synthesize builds the reply text for a turn.
func (r *implResponder) Synthesize(ctx context.Context, intent router.Intent, history []model.Message, passages []model.Passage) (string, error) {
	switch intent {
	case router.IntentGreeting:
		return GreetingReply, nil
	case router.IntentThanks:
		return ThanksReply, nil
	case router.IntentGoodbye:
		return GoodbyeReply, nil
	}

	if r.mode == ModeLLM {
		return r.generate(ctx, history, passages)
	}
	return Compose(passages), nil
}

// Compose renders the deterministic grounded reply: a framing sentence, an
// attribution block for each of the first MaxPassagesInReply passages in
// input order, and a closing invitation. Content is cut at
// MaxCharsPerPassage bytes with an ellipsis appended when truncated; the cut
// is not word-boundary aware.
func Compose(passages []model.Passage) string {
	if len(passages) == 0 {
		return FallbackReply
	}

	parts := []string{replyOpening}

	for i, p := range passages {
		if i >= MaxPassagesInReply {
			break
		}
		parts = append(parts, fmt.Sprintf("\n%d. From %s", i+1, p.BookID))
		if p.PageNumber != "" {
			parts = append(parts, fmt.Sprintf("   (Page %s)", p.PageNumber))
		}
		parts = append(parts, "   "+truncate(p.Content, MaxCharsPerPassage))
	}

	parts = append(parts, replyClosing)
	return strings.Join(parts, " ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// generate delegates the reply to the LLM: system instruction plus retrieved
// passages as grounding context, then the conversation history verbatim.
func (r *implResponder) generate(ctx context.Context, history []model.Message, passages []model.Passage) (string, error) {
	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: gemini.BuildConversationPrompt(formatPassages(passages))}},
		},
		Contents: historyToContents(history),
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     llmTemperature,
			MaxOutputTokens: llmMaxOutputTokens,
		},
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty generation response")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// formatPassages renders passages for the prompt context block.
func formatPassages(passages []model.Passage) string {
	if len(passages) == 0 {
		return ""
	}
	formatted := make([]string, 0, len(passages))
	for _, p := range passages {
		if p.PageNumber != "" {
			formatted = append(formatted, fmt.Sprintf("From %s (page %s): %s", p.BookID, p.PageNumber, p.Content))
		} else {
			formatted = append(formatted, fmt.Sprintf("From %s: %s", p.BookID, p.Content))
		}
	}
	return strings.Join(formatted, "\n\n")
}

func historyToContents(history []model.Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}
	return contents
}
