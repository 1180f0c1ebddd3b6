package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tecnofit-assistant/internal/chat"
	"tecnofit-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one conversation turn: classifies the message, dispatches to the FAQ, sales, or general branch and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message and optional thread key"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrEmptyThreadID) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	// The success body is the bare reply shape; the envelope is for errors.
	c.JSON(http.StatusOK, h.newChatResp(output))
}
