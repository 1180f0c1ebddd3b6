package repository

import (
	"context"

	"tecnofit-assistant/internal/model"
)

// ConversationRepository stores per-thread conversation state.
// Messages are append-only; only the orchestrator commits mutations.
type ConversationRepository interface {
	// Get returns a snapshot of the conversation, initializing empty state
	// on first reference to an unseen thread ID.
	Get(ctx context.Context, threadID string) (model.Conversation, error)

	// AppendMessages appends messages to the thread history in order.
	AppendMessages(ctx context.Context, threadID string, msgs ...model.Message) error

	// SetLead stores the captured lead on the thread. Overwrites any
	// previously captured lead.
	SetLead(ctx context.Context, threadID string, lead model.Lead) error
}
