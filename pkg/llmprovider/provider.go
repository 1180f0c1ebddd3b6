package llmprovider

import "context"

// Generator is the consumer-facing generation interface.
// *Manager implements it; tests substitute mocks.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int

	// ResponseSchema, when set, switches the provider to structured output:
	// the reply is a single JSON value conforming to the schema, with absent
	// fields returned as explicit null.
	ResponseSchema map[string]interface{}
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "model", "system"
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text returns the reply text of the response.
func (r *Response) Text() string {
	return r.Content.Text
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
