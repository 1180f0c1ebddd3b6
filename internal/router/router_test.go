package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tecnofit-assistant/pkg/llmprovider"
)

type mockLLM struct {
	reply   string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Role: "model", Text: m.reply}}, nil
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

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Intent
	}{
		{"faq", IntentFAQ},
		{"vendas", IntentSales},
		{"geral", IntentGeneral},
		{"FAQ", IntentFAQ},
		{"  Vendas \n", IntentSales},
		{"GERAL", IntentGeneral},
		{"", IntentGeneral},
		{"sales", IntentGeneral},
		{"faq.", IntentGeneral},
		{"não sei classificar", IntentGeneral},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Label Parsed And Question Echoed", func(t *testing.T) {
		llm := &mockLLM{reply: "vendas"}
		r := New(llm, mockLogger{})

		out, err := r.Classify(ctx, "Quero contratar", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != IntentSales {
			t.Errorf("expected vendas, got %s", out.Intent)
		}
		if out.UserQuestion != "Quero contratar" {
			t.Errorf("expected verbatim question, got %q", out.UserQuestion)
		}
	})

	t.Run("Prompt Carries Context And FAQ Bullets", func(t *testing.T) {
		llm := &mockLLM{reply: "faq"}
		r := New(llm, mockLogger{})

		_, err := r.Classify(ctx, "Renan", "Qual seu nome?", []string{"Como cadastrar aluno?", "Como emitir boleto?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sys := llm.lastReq.SystemInstruction.Text
		if !strings.Contains(sys, `"Qual seu nome?"`) {
			t.Errorf("previous assistant question missing from prompt:\n%s", sys)
		}
		if !strings.Contains(sys, "- Como cadastrar aluno?") || !strings.Contains(sys, "- Como emitir boleto?") {
			t.Errorf("FAQ bullets missing from prompt:\n%s", sys)
		}
		if !strings.Contains(sys, "a regra 1 vence") {
			t.Errorf("sticky precedence rule missing from prompt:\n%s", sys)
		}
		if llm.lastReq.Messages[0].Text != "Renan" {
			t.Errorf("user message not sent verbatim: %q", llm.lastReq.Messages[0].Text)
		}
	})

	t.Run("Empty FAQ Renders Empty Bullet List", func(t *testing.T) {
		llm := &mockLLM{reply: "geral"}
		r := New(llm, mockLogger{})

		out, err := r.Classify(ctx, "Oi", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != IntentGeneral {
			t.Errorf("expected geral, got %s", out.Intent)
		}
		if strings.Contains(llm.lastReq.SystemInstruction.Text, "- ") {
			t.Errorf("expected no bullets for empty FAQ")
		}
	})

	t.Run("Garbled Label Coerced To Geral", func(t *testing.T) {
		llm := &mockLLM{reply: "acho que é sobre vendas, talvez"}
		r := New(llm, mockLogger{})

		out, err := r.Classify(ctx, "???", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != IntentGeneral {
			t.Errorf("expected geral fallback, got %s", out.Intent)
		}
	})

	t.Run("LLM Error Propagates", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("upstream boom")}
		r := New(llm, mockLogger{})

		if _, err := r.Classify(ctx, "Oi", "", nil); err == nil {
			t.Fatalf("expected error to propagate")
		}
	})
}
