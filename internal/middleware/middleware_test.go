package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"book-agent/config"
	"book-agent/internal/middleware"
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

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRequestIDAssigned(t *testing.T) {
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})
	engine := newEngine(mw, mw.RequestID())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Errorf("a request without an id must be assigned one")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})
	engine := newEngine(mw, mw.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.HeaderRequestID); got != "abc-123" {
		t.Errorf("caller-supplied id must be echoed back, got %q", got)
	}
}

func TestRateLimitThrottles(t *testing.T) {
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{PerMinute: 60, Burst: 2})
	engine := newEngine(mw, mw.RateLimit())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests must pass, got %v", codes)
	}
	if codes[3] != http.StatusTooManyRequests {
		t.Errorf("requests beyond the burst must be throttled, got %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{})
	engine := newEngine(mw, mw.RateLimit())

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("zero per-minute config must disable throttling, got %d", w.Code)
		}
	}
}
