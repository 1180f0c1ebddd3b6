package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tecnofit-assistant/internal/chat"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, chat.ErrEmptyMessage
	}
	return req, nil
}
