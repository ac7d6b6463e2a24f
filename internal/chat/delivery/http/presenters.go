package http

import "book-agent/internal/chat"

type chatReq struct {
	Message  string `json:"message"   binding:"required"`
	ThreadID string `json:"thread_id" binding:"required"`
}

func (r chatReq) toInput() chat.TurnInput {
	return chat.TurnInput{
		ThreadID: r.ThreadID,
		Message:  r.Message,
	}
}

type chatResp struct {
	Response string `json:"response"`
}

func newChatResp(out chat.TurnOutput) chatResp {
	return chatResp{Response: out.Reply}
}
