package telemetry

import (
	"context"

	"tecnofit-assistant/pkg/llmprovider"
)

// ObservedGenerator wraps a Generator and reports every successful model call
// to the tracer, keyed by the thread ID carried in the context.
type ObservedGenerator struct {
	inner  llmprovider.Generator
	tracer Tracer
}

var _ llmprovider.Generator = (*ObservedGenerator)(nil)

// NewObservedGenerator wraps the given generator.
func NewObservedGenerator(inner llmprovider.Generator, tracer Tracer) *ObservedGenerator {
	return &ObservedGenerator{inner: inner, tracer: tracer}
}

// GenerateContent implements llmprovider.Generator.
func (g *ObservedGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	resp, err := g.inner.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	trace := GenerationTrace{
		ThreadID: ThreadIDFrom(ctx),
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}
	if resp.Usage != nil {
		trace.InputTokens = resp.Usage.InputTokens
		trace.OutputTokens = resp.Usage.OutputTokens
		trace.TotalTokens = resp.Usage.TotalTokens
	}
	g.tracer.TraceGeneration(ctx, trace)

	return resp, nil
}
