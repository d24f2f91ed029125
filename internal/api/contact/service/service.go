package contactService

import (
	"PortfolioGolang/internal/api/contact"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IContactService interface {
	SubmitMessage(ctx context.Context, req contact.SubmitMessageRequest) (*entity.ContactMessage, error)
}

type contactService struct {
	log    *logrus.Logger
	mailer smtp.ItfSmtp
	utils  utils.IUtils
}

func New(log *logrus.Logger, mailer smtp.ItfSmtp, utils utils.IUtils) IContactService {
	return &contactService{
		log:    log,
		mailer: mailer,
		utils:  utils,
	}
}
