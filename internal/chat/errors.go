package chat

import "errors"

var (
	// ErrEmptyMessage indicates the turn carried no user text
	ErrEmptyMessage = errors.New("message is empty")

	// ErrEmptyThreadID indicates the turn carried no conversation key
	ErrEmptyThreadID = errors.New("thread_id is empty")
)
