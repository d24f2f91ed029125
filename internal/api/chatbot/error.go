package chatbot

import "PortfolioGolang/pkg/response"

var (
	ErrMessageRequired = response.NewError(400, "message and sessionId are required")
	ErrChatFailed      = response.NewError(500, "failed to process chat message")
)
