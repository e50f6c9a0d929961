package utils

import (
	"context"
	"fmt"

	"bistro-boss/models"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a single message.
type Mailer interface {
	SendEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// PostmarkMailer sends email through Postmark.
type PostmarkMailer struct {
	client *postmark.Client
	sender string
}

func NewPostmarkMailer(apiToken, sender string) *PostmarkMailer {
	return &PostmarkMailer{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

func (pm *PostmarkMailer) SendEmail(_ context.Context, toEmail, subject, htmlContent string) error {
	_, err := pm.client.SendEmail(postmark.Email{
		From:     pm.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendgridMailer sends email through SendGrid.
type SendgridMailer struct {
	client *sendgrid.Client
	sender string
}

func NewSendgridMailer(apiKey, sender string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

func (sm *SendgridMailer) SendEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("Bistro Boss", sm.sender),
		subject,
		mail.NewEmail("", toEmail),
		htmlContent,
		htmlContent,
	)
	resp, err := sm.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// NewMailer picks the configured provider. It returns nil for "none".
func NewMailer(provider, postmarkToken, sendgridKey, sender string) Mailer {
	switch provider {
	case "postmark":
		return NewPostmarkMailer(postmarkToken, sender)
	case "sendgrid":
		return NewSendgridMailer(sendgridKey, sender)
	default:
		return nil
	}
}

// ReceiptEmail renders the subject and body of a payment receipt.
func ReceiptEmail(payment *models.Payment) (string, string) {
	subject := "Payment Confirmation - Bistro Boss"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your order!</strong><br><br>We received your payment of <strong>$%.2f</strong> for %d item(s).<br>Transaction: <strong>%s</strong><br><br>Bistro Boss",
		payment.Price,
		len(payment.CartItems),
		payment.TransactionID,
	)
	return subject, htmlContent
}
