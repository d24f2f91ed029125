package contactHandler

import (
	"PortfolioGolang/internal/api/contact"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/response"
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// Same loose pattern the public site validates against.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (h *ContactHandler) SubmitMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact submission")

	var req contact.SubmitMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("All fields are required"), ctx.Path())
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("All fields are required"), ctx.Path())
	}

	if !emailPattern.MatchString(req.Email) {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("Please provide a valid email address"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	record, err := h.contactService.SubmitMessage(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_contact")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated,
			response.Ok("Thank you for your message! I'll get back to you soon.", record))
	}
}
