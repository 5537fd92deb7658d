package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/mvalderrama/travel-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendPaymentPlan emails the composed payment-plan document to a client
func (s *Sender) SendPaymentPlan(to, clientName, tripName, document string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Plan de pagos - %s", tripName)
	e.Text = []byte(document)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send payment plan to %s: %v", to, err)
		return fmt.Errorf("failed to send payment plan: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

// SendTripReminder emails an upcoming-trip reminder to a client
func (s *Sender) SendTripReminder(to, clientName, tripName, startDate string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Tu viaje se acerca - %s", tripName)

	body := fmt.Sprintf(
		"Hola %s!\n\n"+
			"Te recordamos que tu viaje %s comienza el %s.\n"+
			"Si tienes pagos pendientes, por favor completarlos antes de la fecha de salida.\n"+
			"\nSaludos,\nTu agencia de viajes",
		clientName, tripName, startDate,
	)
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send trip reminder to %s: %v", to, err)
		return fmt.Errorf("failed to send trip reminder: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}
