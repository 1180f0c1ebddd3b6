package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tecnofit-assistant/internal/chat"
	"tecnofit-assistant/internal/router"
	"tecnofit-assistant/pkg/response"
)

type mockUseCase struct {
	out       chat.TurnOutput
	err       error
	lastInput chat.TurnInput
	called    bool
}

func (m *mockUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) (chat.TurnOutput, error) {
	m.called = true
	m.lastInput = input
	if m.err != nil {
		return chat.TurnOutput{}, m.err
	}
	return m.out, nil
}

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

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(mockLogger{}, uc)
	r.POST("/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{out: chat.TurnOutput{
			ThreadID: "t1",
			Reply:    "Olá! Como posso ajudar?",
			Intent:   router.IntentGeneral,
		}}
		r := newTestRouter(uc)

		w := postChat(t, r, `{"message": "Oi", "thread_id": "t1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp chatResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Message != "Olá! Como posso ajudar?" {
			t.Errorf("unexpected message: %q", resp.Message)
		}
		if resp.ThreadID != "t1" {
			t.Errorf("unexpected thread_id: %q", resp.ThreadID)
		}
	})

	t.Run("Thread ID Defaults", func(t *testing.T) {
		uc := &mockUseCase{out: chat.TurnOutput{ThreadID: chat.DefaultThreadID, Reply: "oi"}}
		r := newTestRouter(uc)

		w := postChat(t, r, `{"message": "Oi"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.ThreadID != chat.DefaultThreadID {
			t.Errorf("expected default thread id, got %q", uc.lastInput.ThreadID)
		}
	})

	t.Run("Empty Message Rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
			w := postChat(t, r, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, w.Code)
			}
		}
		if uc.called {
			t.Errorf("usecase must not run for rejected input")
		}
	})

	t.Run("Malformed JSON Rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := postChat(t, r, `{"message": `)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Turn Failure Returns 500 With Message", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("all providers failed")}
		r := newTestRouter(uc)

		w := postChat(t, r, `{"message": "Oi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if !strings.Contains(resp.Message, "all providers failed") {
			t.Errorf("error message not surfaced: %q", resp.Message)
		}
	})
}
