package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the Langfuse ingestion API.
// Safe for concurrent use.
type Client struct {
	host       string
	publicKey  string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a new Langfuse client with the given configuration
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		host:       cfg.Host,
		publicKey:  cfg.PublicKey,
		secretKey:  cfg.SecretKey,
		httpClient: cfg.HTTPClient,
	}, nil
}

// NewEvent builds an ingestion event with a fresh ID and timestamp.
func NewEvent(eventType string, body interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Body:      body,
	}
}

// Ingest sends a batch of events to the ingestion API.
// The ingestion API answers 207 for partially accepted batches; both 200 and
// 207 count as delivered.
func (c *Client) Ingest(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	body, err := json.Marshal(ingestionRequest{Batch: events})
	if err != nil {
		return fmt.Errorf("langfuse: failed to marshal batch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+ingestionPath, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("langfuse: failed to create request: %w", err)
	}
	httpReq.SetBasicAuth(c.publicKey, c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("langfuse: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusMultiStatus {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("langfuse: API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
