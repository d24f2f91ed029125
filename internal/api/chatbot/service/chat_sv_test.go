package chatbotService

import (
	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestService(now func() time.Time) *chatbotService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if now == nil {
		now = time.Now
	}

	return &chatbotService{
		log: logger,
		now: now,
	}
}

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)
	}
}

func TestChatProjectsTopic(t *testing.T) {
	s := newTestService(nil)

	resp, err := s.Chat(context.Background(), chatbot.ChatRequest{
		Message:   "Tell me about your projects",
		SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if !strings.Contains(resp.Text, "projects page") {
		t.Errorf("expected projects template, got %q", resp.Text)
	}
	if len(resp.Actions) == 0 {
		t.Fatal("expected actions for projects topic")
	}
	if resp.Actions[0].Action != entity.ActionNavigate || resp.Actions[0].Data != "/projects" {
		t.Errorf("first action = %+v, want navigate:/projects", resp.Actions[0])
	}
	if resp.Actions[1].Action != entity.ActionExternal {
		t.Errorf("second action = %+v, want external github link", resp.Actions[1])
	}
	if resp.SessionID != "s1" {
		t.Errorf("sessionId = %q, want s1", resp.SessionID)
	}
}

func TestChatUpdatesContext(t *testing.T) {
	s := newTestService(nil)

	resp, err := s.Chat(context.Background(), chatbot.ChatRequest{
		Message:   "my name is ann and I like react",
		SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	got := resp.Context
	if got == nil {
		t.Fatal("expected context in response")
	}
	if got.Name != "Ann" {
		t.Errorf("name = %q, want Ann", got.Name)
	}
	if len(got.Interests) != 1 || got.Interests[0] != "react" {
		t.Errorf("interests = %v, want [react]", got.Interests)
	}
	if len(got.ConversationHistory) != 1 {
		t.Errorf("history = %v, want one entry", got.ConversationHistory)
	}
}

func TestSkillsRepeatVariant(t *testing.T) {
	s := newTestService(nil)

	session := entity.NewSessionContext("s1")
	session.RecordTopic("skills")
	for i := 0; i < 4; i++ {
		session.RecordUtterance("message")
	}

	first := skillsReply(entity.NewSessionContext("s1"), false)
	repeat := s.respond("what skills do you have", session)

	if repeat.Text == first.Text {
		t.Error("repeat variant should differ from first-time variant")
	}
	if !strings.Contains(repeat.Text, "as mentioned") {
		t.Errorf("expected repeat template, got %q", repeat.Text)
	}
}

func TestGreetingTimeOfDay(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{8, "Good morning"},
		{14, "Good afternoon"},
		{21, "Good evening"},
	}

	for _, tc := range cases {
		s := newTestService(fixedClock(tc.hour))
		reply := s.respond("hello", entity.NewSessionContext("s1"))

		if !strings.HasPrefix(reply.Text, tc.want) {
			t.Errorf("hour %d: reply %q, want prefix %q", tc.hour, reply.Text, tc.want)
		}
	}
}

func TestGreetingReturningVariant(t *testing.T) {
	s := newTestService(fixedClock(9))

	cold := s.respond("hi", entity.NewSessionContext("s1"))

	session := entity.NewSessionContext("s1")
	session.RecordTopic("skills")
	for i := 0; i < 4; i++ {
		session.RecordUtterance("message")
	}
	returning := s.respond("hi", session)

	if returning.Text == cold.Text {
		t.Error("returning greeting should differ from cold-start greeting")
	}
	if !strings.Contains(returning.Text, "Welcome back") {
		t.Errorf("expected returning variant, got %q", returning.Text)
	}
}

func TestFallbackColdVersusOngoing(t *testing.T) {
	s := newTestService(nil)

	cold := s.respond("zzz qqq", entity.NewSessionContext("s1"))
	if len(cold.Actions) != 0 {
		t.Errorf("fallback should carry no actions, got %v", cold.Actions)
	}

	session := entity.NewSessionContext("s1")
	session.RecordUtterance("earlier message")
	ongoing := s.respond("zzz qqq", session)

	if cold.Text == ongoing.Text {
		t.Error("ongoing fallback should differ from cold fallback")
	}
}

func TestNameIsWriteOnceAcrossMessages(t *testing.T) {
	s := newTestService(nil)
	session := entity.NewSessionContext("s1")

	s.respond("my name is ann", session)
	s.respond("my name is bob", session)

	if session.Name != "Ann" {
		t.Errorf("name = %q, want Ann", session.Name)
	}
}

type stubRelay struct {
	resp *chatbot.ChatResponse
	err  error
}

func (r *stubRelay) Send(_ context.Context, _, _ string, _ *entity.SessionContext) (*chatbot.ChatResponse, error) {
	return r.resp, r.err
}

func TestChatRemoteFirst(t *testing.T) {
	s := newTestService(nil)
	s.relay = &stubRelay{resp: &chatbot.ChatResponse{Text: "remote answer", SessionID: "s1"}}

	resp, err := s.Chat(context.Background(), chatbot.ChatRequest{Message: "hello", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp.Text != "remote answer" {
		t.Errorf("expected remote reply, got %q", resp.Text)
	}
}

func TestChatFallsBackWhenRemoteFails(t *testing.T) {
	s := newTestService(fixedClock(9))
	s.relay = &stubRelay{err: errors.New("connection refused")}

	resp, err := s.Chat(context.Background(), chatbot.ChatRequest{Message: "hello", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat should not surface relay errors, got %v", err)
	}
	if !strings.Contains(resp.Text, "portfolio assistant") {
		t.Errorf("expected local greeting after fallback, got %q", resp.Text)
	}
}
