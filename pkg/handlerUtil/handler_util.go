package handlerUtil

import (
	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/api/contact"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Chatbot domain errors
	if errors.Is(err, chatbot.ErrChatFailed) {
		h.logger.WithFields(fields).Error("Chat processing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(
			response.Fail("Failed to process chat message"))
	}

	// Contact domain errors
	if errors.Is(err, contact.ErrSubmitFailed) {
		h.logger.WithFields(fields).Error("Contact submission failed")
		return c.Status(fiber.StatusInternalServerError).JSON(
			response.Fail("Failed to submit contact form. Please try again."))
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(response.Fail(err.Error()))
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Fail("An unexpected error occurred"))
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(response.Fail(err.Error()))
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(
		response.Fail("Request timed out"))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
