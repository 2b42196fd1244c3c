package sendGrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Category tags every message so shop mail can be filtered in SendGrid stats.
const Category = "repair-shop"

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type emailService struct {
	client *sendgrid.Client
	sender *mail.Email
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return NewEmailServiceWithClient(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

// NewEmailServiceWithClient sends through an already configured client,
// e.g. one pointed at another base URL.
func NewEmailServiceWithClient(client *sendgrid.Client, fromEmail string, fromName string) EmailService {
	return &emailService{client: client, sender: mail.NewEmail(fromName, fromEmail)}
}

func addresses(list []string) []*mail.Email {
	out := make([]*mail.Email, 0, len(list))
	for _, addr := range list {
		out = append(out, mail.NewEmail("", addr))
	}
	return out
}

// compose builds a single-personalization message. The HTML part is only
// attached when there is one.
func (e *emailService) compose(req *models.EmailNotificationRequest) *mail.SGMailV3 {
	p := mail.NewPersonalization()
	p.Subject = req.Subject
	p.AddTos(mail.NewEmail("", req.To))
	if len(req.CC) > 0 {
		p.AddCCs(addresses(req.CC)...)
	}
	if len(req.BCC) > 0 {
		p.AddBCCs(addresses(req.BCC)...)
	}

	msg := mail.NewV3Mail().SetFrom(e.sender)
	msg.AddPersonalizations(p)
	msg.AddCategories(Category)
	msg.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		msg.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	return msg
}

func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	resp, err := e.client.SendWithContext(ctx, e.compose(req))
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	return nil
}
