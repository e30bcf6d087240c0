package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"caseline/internal/domain/notification"
	"caseline/internal/shared/config"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	AdminAddress string
	// BaseURL is the base URL for links in notification bodies.
	BaseURL string
}

// SMTPMailService delivers workflow notifications over SMTP. It implements
// notification.Mailer.
type SMTPMailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailService(cfg SMTPConfig) *SMTPMailService {
	return &SMTPMailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// FromEmailConfig builds an SMTPMailService from the application config.
func FromEmailConfig(cfg *config.EmailConfig, baseURL string) *SMTPMailService {
	return NewSMTPMailService(SMTPConfig{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		Username:     cfg.SMTPUser,
		Password:     cfg.SMTPPassword,
		FromAddress:  cfg.FromAddress,
		FromName:     cfg.FromName,
		AdminAddress: cfg.AdminAddress,
		BaseURL:      baseURL,
	})
}

func (s *SMTPMailService) Notify(ctx context.Context, contact string, assignedID uint, role string, template notification.Template) error {
	subject, body := s.renderForContact(assignedID, role, template)
	return s.send(contact, subject, body)
}

func (s *SMTPMailService) NotifyAdmin(ctx context.Context, template notification.Template) error {
	subject, body := s.renderForAdmin(template)
	return s.send(s.config.AdminAddress, subject, body)
}

func (s *SMTPMailService) renderForContact(assignedID uint, role string, template notification.Template) (string, string) {
	switch template {
	case notification.TemplateNewTicket:
		body := fmt.Sprintf(
			"A new ticket has been opened and assigned to you.\n\nView it at %s/tickets (sign in as %s, assignment #%d).\n",
			s.config.BaseURL, role, assignedID)
		return "A new ticket is waiting for you", body
	default:
		body := fmt.Sprintf("There is an update on your account. Visit %s for details.\n", s.config.BaseURL)
		return "Account update", body
	}
}

func (s *SMTPMailService) renderForAdmin(template notification.Template) (string, string) {
	switch template {
	case notification.TemplateNewTicket:
		body := fmt.Sprintf("A new ticket was submitted. Review it at %s/tickets.\n", s.config.BaseURL)
		return "New ticket submitted", body
	case notification.TemplateProfileUpdated:
		body := fmt.Sprintf("A profile was updated. Review it at %s/profiles.\n", s.config.BaseURL)
		return "Profile updated", body
	default:
		return "Notification", fmt.Sprintf("Something changed. Visit %s for details.\n", s.config.BaseURL)
	}
}

func (s *SMTPMailService) send(to, subject, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
