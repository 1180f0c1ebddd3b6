package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleTurn runs one conversation turn: classify the user message,
	// dispatch to exactly one branch handler, and commit the exchange to
	// the conversation history.
	HandleTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
}
