package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"book-agent/internal/chat"
	chathttp "book-agent/internal/chat/delivery/http"
)

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

type mockUseCase struct {
	lastInput chat.TurnInput
	output    chat.TurnOutput
	err       error
}

func (m *mockUseCase) ProcessTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	m.lastInput = input
	return m.output, m.err
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := chathttp.New(&mockLogger{}, uc)
	chathttp.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func postChat(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	uc := &mockUseCase{output: chat.TurnOutput{Reply: "Hello! How can I help?"}}
	engine := newTestRouter(uc)

	w := postChat(t, engine, `{"message":"hello","thread_id":"t1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Response != "Hello! How can I help?" {
		t.Errorf("unexpected reply %q", resp.Data.Response)
	}
	if uc.lastInput.ThreadID != "t1" || uc.lastInput.Message != "hello" {
		t.Errorf("input not forwarded: %+v", uc.lastInput)
	}
}

func TestChatMissingFields(t *testing.T) {
	engine := newTestRouter(&mockUseCase{})

	for name, body := range map[string]string{
		"no message":   `{"thread_id":"t1"}`,
		"no thread_id": `{"message":"hello"}`,
		"bad json":     `{`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postChat(t, engine, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestChatValidationErrorFromUseCase(t *testing.T) {
	uc := &mockUseCase{err: chat.ErrEmptyMessage}
	engine := newTestRouter(uc)

	w := postChat(t, engine, `{"message":" ","thread_id":"t1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unusable input, got %d", w.Code)
	}
}
