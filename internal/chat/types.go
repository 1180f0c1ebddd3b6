package chat

import (
	"tecnofit-assistant/internal/model"
	"tecnofit-assistant/internal/router"
)

// DefaultThreadID is used when the caller does not supply a conversation key.
const DefaultThreadID = "default_thread"

// TurnInput is one incoming user turn.
type TurnInput struct {
	ThreadID string
	Message  string
}

// TurnOutput is the result of a completed turn.
type TurnOutput struct {
	ThreadID string
	Reply    string
	Intent   router.Intent
	Lead     *model.Lead
}
