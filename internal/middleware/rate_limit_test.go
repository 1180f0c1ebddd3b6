package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tecnofit-assistant/config"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestEngine(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, &config.Config{RateLimit: cfg})

	r := gin.New()
	r.Use(mw.RequestID())
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPost(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("Burst Then Reject", func(t *testing.T) {
		r := newTestEngine(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

		for i := 0; i < 2; i++ {
			if w := doPost(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
		if w := doPost(r); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst, got %d", w.Code)
		}
	})

	t.Run("Disabled Passes Everything", func(t *testing.T) {
		r := newTestEngine(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for i := 0; i < 5; i++ {
			if w := doPost(r); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Request ID Issued", func(t *testing.T) {
		r := newTestEngine(config.RateLimitConfig{})

		w := doPost(r)
		if w.Header().Get(HeaderRequestID) == "" {
			t.Errorf("expected %s header on response", HeaderRequestID)
		}
	})
}
