package usecase

import (
	"context"
	"time"

	"tecnofit-assistant/internal/chat/repository"
	"tecnofit-assistant/internal/knowledge"
	"tecnofit-assistant/internal/model"
	"tecnofit-assistant/internal/router"
	"tecnofit-assistant/internal/telemetry"
	"tecnofit-assistant/pkg/llmprovider"
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

// mockRouter returns a scripted intent without calling any model.
type mockRouter struct {
	intent router.Intent
	err    error

	lastMessage      string
	lastAssistant    string
	lastFAQQuestions []string
}

var _ router.Router = (*mockRouter)(nil)

func (m *mockRouter) Classify(ctx context.Context, message, lastAssistant string, faqQuestions []string) (router.Output, error) {
	m.lastMessage = message
	m.lastAssistant = lastAssistant
	m.lastFAQQuestions = faqQuestions
	if m.err != nil {
		return router.Output{}, m.err
	}
	return router.Output{Intent: m.intent, UserQuestion: message}, nil
}

// mockExtractor returns a scripted lead.
type mockExtractor struct {
	lead model.Lead
	err  error
}

func (m *mockExtractor) Extract(ctx context.Context, text string) (model.Lead, error) {
	if m.err != nil {
		return model.Lead{}, m.err
	}
	return m.lead, nil
}

// mockStore serves fixed FAQ entries.
type mockStore struct {
	entries []model.FAQEntry
}

var _ knowledge.Store = (*mockStore)(nil)

func (m *mockStore) Load(ctx context.Context) []model.FAQEntry {
	return m.entries
}

func (m *mockStore) Questions(ctx context.Context) []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Question)
	}
	return out
}

// mockLLM returns a scripted reply and records the last request.
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

// recordTracer records the turns it sees.
type recordTracer struct {
	turns []telemetry.TurnTrace
}

var _ telemetry.Tracer = (*recordTracer)(nil)

func (r *recordTracer) TraceTurn(ctx context.Context, t telemetry.TurnTrace) {
	r.turns = append(r.turns, t)
}

func (r *recordTracer) TraceGeneration(ctx context.Context, g telemetry.GenerationTrace) {}

// strptr is a test shorthand for optional lead fields.
func strptr(s string) *string { return &s }

type fixture struct {
	uc        *implUseCase
	router    *mockRouter
	extractor *mockExtractor
	llm       *mockLLM
	repo      *repository.MemoryRepository
	tracer    *recordTracer
}

func newFixture(intent router.Intent) *fixture {
	f := &fixture{
		router:    &mockRouter{intent: intent},
		extractor: &mockExtractor{},
		llm:       &mockLLM{reply: "resposta"},
		repo:      repository.NewMemory(16, time.Minute),
		tracer:    &recordTracer{},
	}
	f.uc = New(
		mockLogger{},
		f.llm,
		f.router,
		f.extractor,
		&mockStore{entries: []model.FAQEntry{
			{Question: "Como cadastrar aluno?", Answer: "Pelo menu Alunos."},
		}},
		f.repo,
		f.tracer,
		0,
	)
	return f
}
