package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"book-agent/internal/chat"
	"book-agent/internal/chat/repository/memory"
	"book-agent/internal/model"
	"book-agent/internal/responder"
	"book-agent/internal/router"
)

func newTestUseCase(repo *mockRepo, ret *mockRetriever, rsp *mockResponder) chat.UseCase {
	return New(&mockLogger{}, router.New(), ret, rsp, repo, Limits{Direct: 5, Generate: 3})
}

func TestProcessTurnValidation(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &mockRetriever{}, &mockResponder{reply: "ok"})

	_, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1"})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	_, err = uc.ProcessTurn(context.Background(), chat.TurnInput{Message: "hello"})
	if !errors.Is(err, chat.ErrEmptyThreadID) {
		t.Errorf("expected ErrEmptyThreadID, got %v", err)
	}

	_, err = uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("whitespace-only message must be rejected, got %v", err)
	}
}

func TestProcessTurnAppendsBothMessages(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &mockRetriever{}, &mockResponder{reply: "the answer"})

	out, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "what is sovereignty?"})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if out.Reply != "the answer" {
		t.Errorf("unexpected reply %q", out.Reply)
	}

	conv, found, _ := repo.GetConversation(context.Background(), "t1")
	if !found {
		t.Fatalf("conversation not persisted")
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("expected user+assistant messages, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Role != model.RoleUser || conv.Messages[0].Content != "what is sovereignty?" {
		t.Errorf("user message not recorded first: %+v", conv.Messages[0])
	}
	if conv.Messages[1].Role != model.RoleAssistant || conv.Messages[1].Content != "the answer" {
		t.Errorf("assistant message not recorded last: %+v", conv.Messages[1])
	}
}

func TestProcessTurnSkipsRetrievalForSocialIntents(t *testing.T) {
	ret := &mockRetriever{}
	uc := newTestUseCase(newMockRepo(), ret, &mockResponder{reply: "hi"})

	for _, msg := range []string{"hello", "thanks", "bye"} {
		if _, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: msg}); err != nil {
			t.Fatalf("ProcessTurn(%q): %v", msg, err)
		}
	}
	if ret.calls != 0 {
		t.Errorf("social turns must not hit retrieval, got %d calls", ret.calls)
	}
}

func TestProcessTurnRetrievalLimitTracksMode(t *testing.T) {
	ret := &mockRetriever{}
	uc := newTestUseCase(newMockRepo(), ret, &mockResponder{reply: "r"})
	uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "tell me about books"})
	if ret.lastLimit != 5 {
		t.Errorf("template mode must request the direct limit, got %d", ret.lastLimit)
	}

	ret = &mockRetriever{}
	uc = newTestUseCase(newMockRepo(), ret, &mockResponder{reply: "r", mode: responder.ModeLLM})
	uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "tell me about books"})
	if ret.lastLimit != 3 {
		t.Errorf("llm mode must request the generate limit, got %d", ret.lastLimit)
	}
}

func TestProcessTurnSynthesisFailureLeavesStoreUnchanged(t *testing.T) {
	repo := newMockRepo()
	rsp := &mockResponder{reply: "first"}
	uc := newTestUseCase(repo, &mockRetriever{}, rsp)

	if _, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "hello"}); err != nil {
		t.Fatalf("seed turn: %v", err)
	}

	rsp.err = errors.New("model overloaded")
	out, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "hello again"})
	if err != nil {
		t.Fatalf("failed turn must still produce a reply: %v", err)
	}
	if out.Reply != chat.ApologyReply {
		t.Errorf("expected apology, got %q", out.Reply)
	}

	conv, _, _ := repo.GetConversation(context.Background(), "t1")
	if len(conv.Messages) != 2 {
		t.Errorf("failed turn must leave prior state unchanged, got %d messages", len(conv.Messages))
	}
}

func TestProcessTurnLoadFailure(t *testing.T) {
	repo := newMockRepo()
	repo.getErr = errors.New("connection refused")
	uc := newTestUseCase(repo, &mockRetriever{}, &mockResponder{reply: "r"})

	out, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "hello"})
	if err != nil {
		t.Fatalf("load failure must degrade, not error: %v", err)
	}
	if out.Reply != chat.ApologyReply {
		t.Errorf("expected apology, got %q", out.Reply)
	}
	if repo.saves != 0 {
		t.Errorf("nothing may be persisted on load failure")
	}
}

func TestProcessTurnPersistFailure(t *testing.T) {
	repo := newMockRepo()
	repo.saveErr = errors.New("disk full")
	uc := newTestUseCase(repo, &mockRetriever{}, &mockResponder{reply: "r"})

	out, err := uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: "hello"})
	if err != nil {
		t.Fatalf("persist failure must degrade, not error: %v", err)
	}
	if out.Reply != chat.ApologyReply {
		t.Errorf("a turn whose recording failed must not claim success, got %q", out.Reply)
	}
}

func TestProcessTurnHistoryAccumulates(t *testing.T) {
	repo := newMockRepo()
	rsp := &mockResponder{reply: "noted"}
	uc := newTestUseCase(repo, &mockRetriever{}, rsp)
	ctx := context.Background()

	uc.ProcessTurn(ctx, chat.TurnInput{ThreadID: "t1", Message: "My favorite color is purple"})
	uc.ProcessTurn(ctx, chat.TurnInput{ThreadID: "t1", Message: "What is my favorite color?"})

	// The second synthesis sees both prior messages plus the new user turn.
	if len(rsp.lastHistory) != 3 {
		t.Fatalf("expected 3 messages of history at synthesis, got %d", len(rsp.lastHistory))
	}
	if rsp.lastHistory[0].Content != "My favorite color is purple" {
		t.Errorf("earlier turns must be visible to later ones: %+v", rsp.lastHistory[0])
	}

	conv, _, _ := repo.GetConversation(ctx, "t1")
	if len(conv.Messages) != 4 {
		t.Errorf("two turns must leave 4 messages, got %d", len(conv.Messages))
	}
}

func TestProcessTurnThreadsAreIsolated(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &mockRetriever{}, &mockResponder{reply: "r"})
	ctx := context.Background()

	uc.ProcessTurn(ctx, chat.TurnInput{ThreadID: "a", Message: "hello"})
	uc.ProcessTurn(ctx, chat.TurnInput{ThreadID: "b", Message: "hello"})

	convA, _, _ := repo.GetConversation(ctx, "a")
	convB, _, _ := repo.GetConversation(ctx, "b")
	if len(convA.Messages) != 2 || len(convB.Messages) != 2 {
		t.Errorf("threads must not share history: a=%d b=%d", len(convA.Messages), len(convB.Messages))
	}
}

func TestProcessTurnConcurrentSameThread(t *testing.T) {
	repo := memory.New(&mockLogger{})
	uc := New(&mockLogger{}, router.New(), &mockRetriever{}, &mockResponder{reply: "r"}, repo, Limits{Direct: 5, Generate: 3})

	const turns = 20
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uc.ProcessTurn(context.Background(), chat.TurnInput{ThreadID: "t1", Message: fmt.Sprintf("message %d", i)})
		}(i)
	}
	wg.Wait()

	conv, _, _ := repo.GetConversation(context.Background(), "t1")
	if len(conv.Messages) != 2*turns {
		t.Errorf("lost update: expected %d messages, got %d", 2*turns, len(conv.Messages))
	}
}
