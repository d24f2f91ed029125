package main

import (
	"PortfolioGolang/internal/config"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/smtp"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	smtpMailer := smtp.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithChatRelay(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Portfolio backend started")
	logger.Info("Contact endpoint: POST /api/contact/submit")
	logger.Info("Chatbot endpoint: POST /api/chatbot/chat")
	logger.Info("Health check: GET /api/health")

	<-sigChan
	logger.Info("Shutting down server...")
}
