package chatbotService

import (
	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/intent"
	"context"

	"github.com/sirupsen/logrus"
)

// Chat answers one utterance. When a remote responder is configured it
// gets exactly one attempt; any failure falls back to the local
// responder silently, so the caller cannot tell the two apart.
func (s *chatbotService) Chat(ctx context.Context, req chatbot.ChatRequest) (*chatbot.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session := req.Context
	if session == nil {
		session = entity.NewSessionContext(req.SessionID)
	}
	if session.SessionID == "" {
		session.SessionID = req.SessionID
	}

	if s.relay != nil {
		remote, err := s.relay.Send(ctx, req.Message, req.SessionID, session)
		if err == nil {
			return remote, nil
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Warn("Remote responder failed, answering locally")
	}

	reply := s.respond(req.Message, session)

	return &chatbot.ChatResponse{
		Text:      reply.Text,
		Actions:   reply.Actions,
		Context:   session,
		SessionID: req.SessionID,
	}, nil
}

// respond classifies the utterance, updates the session context, and
// builds the reply. Generation and context update are one step: the
// predicates driving variant selection are snapshotted before the
// context absorbs the current message.
func (s *chatbotService) respond(message string, session *entity.SessionContext) entity.Reply {
	if name, ok := intent.ExtractName(message); ok {
		session.TrySetName(name)
	}
	session.RecordInterests(intent.ExtractInterests(message, session.Interests))

	topic := intent.Classify(message)
	askedBefore := session.HasAskedBefore(string(topic))
	returning := session.IsReturningVisitor()
	coldStart := len(session.ConversationHistory) == 0

	session.RecordTopic(string(topic))
	session.RecordUtterance(message)

	switch topic {
	case intent.TopicGreeting:
		return s.greetingReply(session, returning)
	case intent.TopicProjects:
		return projectsReply(session, askedBefore)
	case intent.TopicSkills:
		return skillsReply(session, askedBefore)
	case intent.TopicContact:
		return contactReply(session, askedBefore)
	case intent.TopicEducation:
		return educationReply(session)
	case intent.TopicResume:
		return resumeReply(session, askedBefore)
	case intent.TopicAbout:
		return aboutReply(session)
	case intent.TopicMobile:
		return mobileReply(session)
	case intent.TopicAPI:
		return apiReply(session)
	case intent.TopicCloud:
		return cloudReply(session)
	case intent.TopicDesign:
		return designReply(session)
	case intent.TopicConsulting:
		return consultingReply(session)
	case intent.TopicMaintenance:
		return maintenanceReply(session)
	default:
		return fallbackReply(session, coldStart)
	}
}

func (s *chatbotService) timeOfDayGreeting() string {
	hour := s.now().Hour()

	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
