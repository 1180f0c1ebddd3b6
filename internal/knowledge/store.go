package knowledge

import (
	"context"
	"encoding/json"
	"os"

	"tecnofit-assistant/internal/model"
	pkgLog "tecnofit-assistant/pkg/log"
)

// Store provides read access to the FAQ knowledge base.
type Store interface {
	// Load returns all entries. A missing or malformed source yields an
	// empty slice, never an error.
	Load(ctx context.Context) []model.FAQEntry

	// Questions returns the question text of every entry, for the
	// classifier prompt.
	Questions(ctx context.Context) []string
}

// FileStore reads FAQ entries from a JSON file on every call.
type FileStore struct {
	path string
	l    pkgLog.Logger
}

var _ Store = (*FileStore)(nil)

// New creates a file-backed Store reading from the given path.
func New(path string, l pkgLog.Logger) *FileStore {
	return &FileStore{path: path, l: l}
}

// Load reads and parses the knowledge file. Degrades to empty on any failure.
func (s *FileStore) Load(ctx context.Context) []model.FAQEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.l.Warnf(ctx, "knowledge: failed to read %s: %v", s.path, err)
		}
		return []model.FAQEntry{}
	}

	var entries []model.FAQEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.l.Warnf(ctx, "knowledge: invalid JSON in %s: %v", s.path, err)
		return []model.FAQEntry{}
	}

	return entries
}

// Questions returns the question text of every loaded entry.
func (s *FileStore) Questions(ctx context.Context) []string {
	entries := s.Load(ctx)
	questions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Question != "" {
			questions = append(questions, e.Question)
		}
	}
	return questions
}
