package services

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/cloudshift360/site-backend/internal/config"
)

// Notifier is the best-effort side channel telling the owner about a new
// inquiry. A false return never affects the submission result.
type Notifier interface {
	NotifyOwner(n InquiryNotification) bool
}

type InquiryNotification struct {
	Name        string
	Email       string
	Phone       *string
	Company     *string
	ServiceType string
	Message     string
	Budget      *string
	Timeline    *string
}

// SMTPNotifier delivers owner notifications as plain-text email over
// SMTP with STARTTLS.
type SMTPNotifier struct {
	cfg *config.Config
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (s *SMTPNotifier) NotifyOwner(n InquiryNotification) bool {
	if s.cfg.SMTPHost == "" || s.cfg.OwnerNotifyEmail == "" {
		slog.Warn("owner notification skipped: SMTP not configured")
		return false
	}

	subject := fmt.Sprintf("New Inquiry: %s - %s", n.Name, ServiceTypeLabel(n.ServiceType))
	fromHeader := fmt.Sprintf("%s <%s>", s.cfg.MailFromName, s.cfg.MailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", s.cfg.OwnerNotifyEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		n.Body(),
	}, "\r\n")

	if err := s.send([]byte(msg)); err != nil {
		slog.Warn("failed to send owner notification", "error", err, "inquiry_email", n.Email)
		return false
	}

	slog.Info("owner notification sent", "inquiry_email", n.Email)
	return true
}

// Body renders the plain-text notification. Optional lines are dropped when
// the field was not provided.
func (n InquiryNotification) Body() string {
	lines := []string{
		"New Inquiry Received",
		"",
		fmt.Sprintf("Name: %s", n.Name),
		fmt.Sprintf("Email: %s", n.Email),
	}
	if n.Phone != nil {
		lines = append(lines, fmt.Sprintf("Phone: %s", *n.Phone))
	}
	if n.Company != nil {
		lines = append(lines, fmt.Sprintf("Company: %s", *n.Company))
	}
	lines = append(lines, "", fmt.Sprintf("Service Type: %s", ServiceTypeLabel(n.ServiceType)))
	if n.Budget != nil {
		lines = append(lines, fmt.Sprintf("Budget: %s", *n.Budget))
	}
	if n.Timeline != nil {
		lines = append(lines, fmt.Sprintf("Timeline: %s", *n.Timeline))
	}
	lines = append(lines,
		"",
		"Message:",
		n.Message,
		"",
		"---",
		fmt.Sprintf("Reply to: %s", n.Email),
	)
	return strings.Join(lines, "\n")
}

// ServiceTypeLabel maps a service-type code to its display label, falling
// back to the raw code for unknown values.
func ServiceTypeLabel(serviceType string) string {
	labels := map[string]string{
		"cloud-devops":           "Cloud & DevOps",
		"it-security":            "IT Security & Infrastructure",
		"digital-marketing":      "Digital Marketing & Growth",
		"ai-consultation":        "AI Consultation",
		"cloud-cost-audit":       "Cloud Cost Audit",
		"technical-consultation": "Technical Consultation",
		"other":                  "Other",
	}
	if label, ok := labels[serviceType]; ok {
		return label
	}
	return serviceType
}

func (s *SMTPNotifier) send(msg []byte) error {
	addr := net.JoinHostPort(s.cfg.SMTPHost, s.cfg.SMTPPort)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// Deadline covers the whole exchange so a stalled server cannot hang
	// the sending goroutine.
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
			return err
		}
	}
	if s.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.cfg.MailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(s.cfg.OwnerNotifyEmail); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
