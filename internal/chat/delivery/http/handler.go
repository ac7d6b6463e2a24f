package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"book-agent/internal/chat"
	"book-agent/pkg/response"
)

// Chat godoc
// @Summary     Process one conversation turn
// @Description Classifies the message, retrieves grounding passages when it is a
// @Description question, synthesizes a reply and appends both messages to the
// @Description thread's history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message and thread key"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// The turn keeps running even if the caller disconnects: once the user
	// message is accepted it must be recorded alongside its reply.
	ctx := context.WithoutCancel(c.Request.Context())

	output, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrEmptyThreadID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat.delivery.http.Chat: uc.ProcessTurn: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(output))
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
