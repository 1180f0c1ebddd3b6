package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tecnofit-assistant/pkg/langfuse"
	pkgLog "tecnofit-assistant/pkg/log"
)

const ingestTimeout = 5 * time.Second

// LangfuseTracer reports turns and generations to Langfuse.
// Delivery is fire-and-forget: failures are logged and dropped so telemetry
// can never fail a turn.
type LangfuseTracer struct {
	client *langfuse.Client
	l      pkgLog.Logger
}

var _ Tracer = (*LangfuseTracer)(nil)

// NewLangfuseTracer creates a Langfuse-backed Tracer.
func NewLangfuseTracer(client *langfuse.Client, l pkgLog.Logger) *LangfuseTracer {
	return &LangfuseTracer{client: client, l: l}
}

// TraceTurn reports one completed conversation turn.
// The trace ID is the thread ID, so generations of every turn in the same
// conversation attach to one session trace.
func (t *LangfuseTracer) TraceTurn(ctx context.Context, trace TurnTrace) {
	events := []langfuse.Event{
		langfuse.NewEvent(langfuse.EventTypeTraceCreate, langfuse.TraceBody{
			ID:        trace.ThreadID,
			Name:      "chat-turn",
			SessionID: trace.ThreadID,
			Input:     trace.UserMessage,
			Output:    trace.AssistantMessage,
		}),
	}

	if trace.LeadCaptured {
		events = append(events, langfuse.NewEvent(langfuse.EventTypeEventCreate, langfuse.EventBody{
			ID:      uuid.NewString(),
			TraceID: trace.ThreadID,
			Name:    "lead-captured",
			Metadata: map[string]string{
				"intent": trace.Intent,
			},
		}))
	}

	t.send(events)
}

// TraceGeneration reports one model call.
func (t *LangfuseTracer) TraceGeneration(ctx context.Context, g GenerationTrace) {
	t.send([]langfuse.Event{
		langfuse.NewEvent(langfuse.EventTypeGenerationCreate, langfuse.GenerationBody{
			ID:      uuid.NewString(),
			TraceID: g.ThreadID,
			Name:    "llm-generation",
			Model:   g.Model,
			Usage: &langfuse.GenerationCost{
				Input:  g.InputTokens,
				Output: g.OutputTokens,
				Total:  g.TotalTokens,
			},
		}),
	})
}

func (t *LangfuseTracer) send(events []langfuse.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()

		if err := t.client.Ingest(ctx, events); err != nil {
			t.l.Warnf(ctx, "telemetry: langfuse ingest failed: %v", err)
		}
	}()
}
