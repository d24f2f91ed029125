package chatbot

import "PortfolioGolang/internal/entity"

type ChatRequest struct {
	Message   string                 `json:"message" validate:"required,min=1,max=1000"`
	SessionID string                 `json:"sessionId" validate:"required"`
	Context   *entity.SessionContext `json:"context,omitempty"`
}

type ChatResponse struct {
	Text      string                 `json:"text"`
	Actions   []entity.Action        `json:"actions,omitempty"`
	Context   *entity.SessionContext `json:"context,omitempty"`
	SessionID string                 `json:"sessionId"`
}

type InfoResponse struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
	Features     []string `json:"features"`
}
