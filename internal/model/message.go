package model

// Role tags who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn entry in a conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is the per-thread unit of state.
// Messages are append-only in arrival order; Lead carries forward once set.
type Conversation struct {
	ThreadID string    `json:"thread_id"`
	Messages []Message `json:"messages"`
	Lead     *Lead     `json:"lead,omitempty"`
}

// LastAssistantBefore returns the assistant message immediately preceding the
// last message, or "" when the previous entry is absent or not an assistant turn.
func (c Conversation) LastAssistantBefore() string {
	if len(c.Messages) < 2 {
		return ""
	}
	prev := c.Messages[len(c.Messages)-2]
	if prev.Role != RoleAssistant {
		return ""
	}
	return prev.Content
}
