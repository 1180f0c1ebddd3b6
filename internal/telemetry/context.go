package telemetry

import "context"

type contextKey struct{}

// WithThreadID tags the context with the conversation key so model calls made
// anywhere inside the turn report against the right session.
func WithThreadID(ctx context.Context, threadID string) context.Context {
	return context.WithValue(ctx, contextKey{}, threadID)
}

// ThreadIDFrom returns the conversation key from the context, or "".
func ThreadIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok {
		return v
	}
	return ""
}
