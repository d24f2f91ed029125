package contactService

import (
	"PortfolioGolang/internal/api/contact"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// SubmitMessage builds the contact record and dispatches the admin
// notification plus the visitor confirmation. Email delivery is
// at-least-attempt: a failed send is logged and the submission still
// succeeds.
func (s *contactService) SubmitMessage(ctx context.Context, req contact.SubmitMessageRequest) (*entity.ContactMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewContactID(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate contact ID")
		return nil, contact.ErrSubmitFailed
	}

	record := entity.ContactMessage{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		UserID:    nil,
		CreatedAt: time.Now().UTC(),
		IsRead:    false,
	}

	if err := s.mailer.SendContactNotification(record.Name, record.Email, record.Subject, record.Message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"contact_id": record.ID,
			"error":      err.Error(),
		}).Warn("Failed to send admin notification email")
	}

	if err := s.mailer.SendContactConfirmation(record.Name, record.Email, record.Message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"contact_id": record.ID,
			"error":      err.Error(),
		}).Warn("Failed to send confirmation email")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"contact_id": record.ID,
	}).Info("Contact message submitted")

	return &record, nil
}
