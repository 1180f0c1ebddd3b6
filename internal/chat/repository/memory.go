package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tecnofit-assistant/internal/model"
)

const (
	// DefaultMaxConversations bounds memory use of the in-process store.
	DefaultMaxConversations = 1024

	// DefaultTTL evicts conversations idle longer than this. Retention is a
	// storage concern, not turn logic: an evicted thread simply restarts empty.
	DefaultTTL = 24 * time.Hour
)

type conversationEntry struct {
	mu   sync.Mutex
	conv model.Conversation
}

// MemoryRepository is an in-process ConversationRepository backed by an
// expirable LRU keyed by thread ID.
type MemoryRepository struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *conversationEntry]
}

var _ ConversationRepository = (*MemoryRepository)(nil)

// NewMemory creates a MemoryRepository. Zero values fall back to defaults.
func NewMemory(maxConversations int, ttl time.Duration) *MemoryRepository {
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryRepository{
		cache: expirable.NewLRU[string, *conversationEntry](maxConversations, nil, ttl),
	}
}

// entry returns the thread's entry, creating empty state on first touch.
func (r *MemoryRepository) entry(threadID string) *conversationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache.Get(threadID); ok {
		return e
	}
	e := &conversationEntry{conv: model.Conversation{ThreadID: threadID}}
	r.cache.Add(threadID, e)
	return e
}

// Get returns a snapshot of the conversation.
func (r *MemoryRepository) Get(ctx context.Context, threadID string) (model.Conversation, error) {
	e := r.entry(threadID)
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := model.Conversation{
		ThreadID: e.conv.ThreadID,
		Messages: make([]model.Message, len(e.conv.Messages)),
	}
	copy(snapshot.Messages, e.conv.Messages)
	if e.conv.Lead != nil {
		leadCopy := *e.conv.Lead
		snapshot.Lead = &leadCopy
	}
	return snapshot, nil
}

// AppendMessages appends messages to the thread history in order.
func (r *MemoryRepository) AppendMessages(ctx context.Context, threadID string, msgs ...model.Message) error {
	e := r.entry(threadID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.conv.Messages = append(e.conv.Messages, msgs...)
	return nil
}

// SetLead stores the captured lead on the thread.
func (r *MemoryRepository) SetLead(ctx context.Context, threadID string, lead model.Lead) error {
	e := r.entry(threadID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.conv.Lead = &lead
	return nil
}

// Len reports how many conversations are currently held.
func (r *MemoryRepository) Len() int {
	return r.cache.Len()
}
