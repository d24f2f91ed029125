package chatclient

import (
	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// IChatClient relays a chat message to a remote responder. Any
// transport failure or non-2xx status is returned as an error so the
// caller can fall back to the local responder. One attempt, no retry.
type IChatClient interface {
	Send(ctx context.Context, message, sessionID string, session *entity.SessionContext) (*chatbot.ChatResponse, error)
}

type chatClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger, baseURL string) IChatClient {
	return &chatClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

type chatEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *chatbot.ChatResponse `json:"data"`
}

func (c *chatClient) Send(ctx context.Context, message, sessionID string, session *entity.SessionContext) (*chatbot.ChatResponse, error) {
	reqBody, err := jsoniter.Marshal(chatbot.ChatRequest{
		Message:   message,
		SessionID: sessionID,
		Context:   session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	url := fmt.Sprintf("%s/chatbot/chat", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote responder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remote responder returned status %d", resp.StatusCode)
	}

	var envelope chatEnvelope
	if err := jsoniter.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	if !envelope.Success || envelope.Data == nil {
		return nil, fmt.Errorf("remote responder rejected message: %s", envelope.Message)
	}

	return envelope.Data, nil
}
