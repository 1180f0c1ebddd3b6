package langfuse

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Langfuse client configuration
type Config struct {
	Host       string
	PublicKey  string
	SecretKey  string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.PublicKey == "" {
		return fmt.Errorf("langfuse: PublicKey is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("langfuse: SecretKey is required")
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Event is a single ingestion-API event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Body      interface{} `json:"body"`
}

// TraceBody creates a trace; SessionID groups traces of one conversation.
type TraceBody struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SessionID string `json:"sessionId,omitempty"`
	Input     any    `json:"input,omitempty"`
	Output    any    `json:"output,omitempty"`
}

// GenerationBody records one model call inside a trace.
type GenerationBody struct {
	ID      string          `json:"id"`
	TraceID string          `json:"traceId"`
	Name    string          `json:"name"`
	Model   string          `json:"model,omitempty"`
	Usage   *GenerationCost `json:"usage,omitempty"`
}

// GenerationCost is the token usage of one generation.
type GenerationCost struct {
	Input  int `json:"input"`
	Output int `json:"output"`
	Total  int `json:"total"`
}

// EventBody records a discrete event (e.g. a captured lead) inside a trace.
type EventBody struct {
	ID       string `json:"id"`
	TraceID  string `json:"traceId"`
	Name     string `json:"name"`
	Metadata any    `json:"metadata,omitempty"`
}

type ingestionRequest struct {
	Batch []Event `json:"batch"`
}
