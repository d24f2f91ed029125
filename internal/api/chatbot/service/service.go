package chatbotService

import (
	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/pkg/chatclient"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatbotService interface {
	Chat(ctx context.Context, req chatbot.ChatRequest) (*chatbot.ChatResponse, error)
	Suggestions() []string
	Info() chatbot.InfoResponse
}

type chatbotService struct {
	log   *logrus.Logger
	relay chatclient.IChatClient
	now   func() time.Time
}

// New builds the chatbot service. relay may be nil, in which case every
// message is answered by the local responder.
func New(log *logrus.Logger, relay chatclient.IChatClient) IChatbotService {
	return &chatbotService{
		log:   log,
		relay: relay,
		now:   time.Now,
	}
}

func (s *chatbotService) Suggestions() []string {
	return []string{
		"Tell me about Michael's projects",
		"What skills does Michael have?",
		"How can I contact Michael?",
		"Show me Michael's resume",
		"What technologies does Michael use?",
		"Tell me about IoT projects",
		"React development services",
		"Michael's experience",
	}
}

func (s *chatbotService) Info() chatbot.InfoResponse {
	return chatbot.InfoResponse{
		Name:    "Michael's AI Assistant",
		Version: "1.0.0",
		Capabilities: []string{
			"Answer questions about Michael's work",
			"Provide project information",
			"Share contact details",
			"Discuss technical skills",
			"Offer personalized recommendations",
		},
		Features: []string{
			"Keyword intent matching",
			"Context-aware responses",
			"Interactive actions",
			"Personalized suggestions",
		},
	}
}
