package chatbotHandler

import (
	"PortfolioGolang/internal/api/chatbot"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *ChatbotHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	var req chatbot.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("Message and sessionId are required"), ctx.Path())
	}

	if req.Message == "" || req.SessionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("Message and sessionId are required"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	resp, err := h.chatbotService.Chat(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK,
			response.Ok("Chat response generated successfully", resp))
	}
}

func (h *ChatbotHandler) GetSuggestions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get suggestions request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK,
		response.Ok("Suggestions retrieved successfully", h.chatbotService.Suggestions()))
}

func (h *ChatbotHandler) GetInfo(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get chatbot info request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK,
		response.Ok("Chatbot info retrieved successfully", h.chatbotService.Info()))
}
