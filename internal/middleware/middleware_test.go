package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskbuster/internal/middleware"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{})

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generated When Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("expected a generated request id")
		}
	})

	t.Run("Echoed When Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "fixed-id")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != "fixed-id" {
			t.Errorf("expected echoed id, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{})

	r := gin.New()
	r.Use(mw.RateLimit(3, time.Hour))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allows Burst Then Rejects", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after burst, got %d", w.Code)
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{})

	r := gin.New()
	r.Use(mw.CORS("http://example.test"))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allowed Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://example.test")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.test" {
			t.Errorf("unexpected allow-origin header: %q", got)
		}
	})

	t.Run("Disallowed Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.test")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("disallowed origin must not be echoed, got %q", got)
		}
	})
}
