package chatbotHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"PortfolioGolang/internal/api/chatbot"
	chatbotService "PortfolioGolang/internal/api/chatbot/service"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	h := New(logger, validator.New(), mw, chatbotService.New(logger, nil))
	h.Start(app.Group("/api"))

	return app
}

func postChat(t *testing.T, app *fiber.App, body interface{}) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/api/chatbot/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	return resp.StatusCode, env
}

func TestChatProjectsMessage(t *testing.T) {
	app := newTestApp()

	status, env := postChat(t, app, chatbot.ChatRequest{
		Message:   "Show me your projects",
		SessionID: "sess-1",
	})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
	}
	if !env.Success {
		t.Fatalf("success = false, message = %q", env.Message)
	}

	var resp chatbot.ChatResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	if resp.SessionID != "sess-1" {
		t.Errorf("sessionId = %q, want sess-1", resp.SessionID)
	}
	if len(resp.Actions) == 0 {
		t.Fatal("expected actions on projects reply")
	}
	if resp.Actions[0].Action != entity.ActionNavigate {
		t.Errorf("first action = %q, want navigate", resp.Actions[0].Action)
	}
	if resp.Actions[0].Label != "View Projects" {
		t.Errorf("first action label = %q", resp.Actions[0].Label)
	}
	if resp.Context == nil {
		t.Fatal("expected updated context in response")
	}
	if len(resp.Context.ConversationHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(resp.Context.ConversationHistory))
	}
}

func TestChatReturningGreetingDiffers(t *testing.T) {
	app := newTestApp()

	_, cold := postChat(t, app, chatbot.ChatRequest{
		Message:   "hello",
		SessionID: "sess-cold",
	})

	session := entity.NewSessionContext("sess-back")
	for _, m := range []string{"hello", "projects", "skills", "contact"} {
		session.RecordUtterance(m)
	}

	_, back := postChat(t, app, chatbot.ChatRequest{
		Message:   "hello",
		SessionID: "sess-back",
		Context:   session,
	})

	var coldResp, backResp chatbot.ChatResponse
	if err := json.Unmarshal(cold.Data, &coldResp); err != nil {
		t.Fatalf("decode cold data: %v", err)
	}
	if err := json.Unmarshal(back.Data, &backResp); err != nil {
		t.Fatalf("decode returning data: %v", err)
	}

	if !strings.Contains(backResp.Text, "Welcome back") {
		t.Errorf("returning greeting = %q, want welcome back variant", backResp.Text)
	}
	if coldResp.Text == backResp.Text {
		t.Error("cold and returning greetings should differ")
	}
}

func TestChatMissingFields(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name string
		body interface{}
	}{
		{"missing message", fiber.Map{"sessionId": "sess-1"}},
		{"missing sessionId", fiber.Map{"message": "hello"}},
		{"empty body", fiber.Map{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := postChat(t, app, tc.body)

			if status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", status, fiber.StatusBadRequest)
			}
			if env.Success {
				t.Error("success should be false")
			}
			if env.Message != "Message and sessionId are required" {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestGetSuggestions(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/chatbot/suggestions", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var suggestions []string
	if err := json.Unmarshal(env.Data, &suggestions); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected suggested questions")
	}
}

func TestGetInfo(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/chatbot/info", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var info chatbot.InfoResponse
	if err := json.Unmarshal(env.Data, &info); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if info.Name != "Michael's AI Assistant" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Version != "1.0.0" {
		t.Errorf("version = %q", info.Version)
	}
}
