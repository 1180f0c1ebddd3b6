package http

import (
	"tecnofit-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message  string `json:"message" binding:"required"`
	ThreadID string `json:"thread_id"`
}

func (r chatReq) toInput() chat.TurnInput {
	threadID := r.ThreadID
	if threadID == "" {
		threadID = chat.DefaultThreadID
	}
	return chat.TurnInput{
		ThreadID: threadID,
		Message:  r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Message  string `json:"message"`
	ThreadID string `json:"thread_id"`
}

func (h *handler) newChatResp(out chat.TurnOutput) chatResp {
	return chatResp{
		Message:  out.Reply,
		ThreadID: out.ThreadID,
	}
}
