package config

import (
	chatbotHandler "PortfolioGolang/internal/api/chatbot/handler"
	chatbotService "PortfolioGolang/internal/api/chatbot/service"
	contactHandler "PortfolioGolang/internal/api/contact/handler"
	contactService "PortfolioGolang/internal/api/contact/service"
	"PortfolioGolang/internal/middleware"
	"PortfolioGolang/pkg/chatclient"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
	smtpMailer smtp.ItfSmtp
	chatRelay  chatclient.IChatClient
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

// WithChatRelay wires the remote responder when CHATBOT_REMOTE_URL is
// set. Without it every message is answered locally.
func WithChatRelay() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before chat relay")
		}

		remoteURL := os.Getenv("CHATBOT_REMOTE_URL")
		if remoteURL == "" {
			s.log.Info("CHATBOT_REMOTE_URL not set, chat runs fully local")
			return nil
		}

		s.chatRelay = chatclient.New(s.log, remoteURL)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chatbot Domain
	chatbotServices := chatbotService.New(s.log, s.chatRelay)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	// Contact Domain
	contactServices := contactService.New(s.log, s.smtpMailer, s.utils)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatbotHandlers, contactHandlers)
}

func (s *Server) Run() error {
	frontendOrigin := os.Getenv("FRONTEND_URL")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:8085"
	}

	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     frontendOrigin,
		AllowCredentials: true,
	}))
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3001"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/api/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Portfolio Backend API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
