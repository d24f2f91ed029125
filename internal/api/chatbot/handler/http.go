package chatbotHandler

import (
	chatbotService "PortfolioGolang/internal/api/chatbot/service"
	"PortfolioGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		chatbotService: cs,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	chatbot := srv.Group("/chatbot")

	chatbot.Post("/chat", h.Chat)
	chatbot.Get("/suggestions", h.GetSuggestions)
	chatbot.Get("/info", h.GetInfo)
}
