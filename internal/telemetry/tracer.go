package telemetry

import "context"

// Tracer observes turn activity. The default is a no-op; wiring Langfuse in
// must never change turn behavior.
type Tracer interface {
	// TraceTurn reports one completed conversation turn.
	TraceTurn(ctx context.Context, t TurnTrace)

	// TraceGeneration reports one model call.
	TraceGeneration(ctx context.Context, g GenerationTrace)
}

// TurnTrace describes a completed turn.
type TurnTrace struct {
	ThreadID         string
	Intent           string
	UserMessage      string
	AssistantMessage string
	LeadCaptured     bool
}

// GenerationTrace describes one model call.
type GenerationTrace struct {
	ThreadID     string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NopTracer discards everything.
type NopTracer struct{}

var _ Tracer = NopTracer{}

func (NopTracer) TraceTurn(ctx context.Context, t TurnTrace)             {}
func (NopTracer) TraceGeneration(ctx context.Context, g GenerationTrace) {}
