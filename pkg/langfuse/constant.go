package langfuse

import "time"

const (
	// DefaultHost is the Langfuse cloud endpoint
	DefaultHost = "https://cloud.langfuse.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	ingestionPath = "/api/public/ingestion"

	// Event types of the ingestion API
	EventTypeTraceCreate      = "trace-create"
	EventTypeGenerationCreate = "generation-create"
	EventTypeEventCreate      = "event-create"
)
