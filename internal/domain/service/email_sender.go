package service

import "context"

// EmailTemplate names a rendered email body.
type EmailTemplate string

const (
	EmailWelcome           EmailTemplate = "welcome"
	EmailOTP               EmailTemplate = "otp"
	EmailPasswordChanged   EmailTemplate = "password_changed"
	EmailAddressChanged    EmailTemplate = "email_changed"
	EmailPromotion         EmailTemplate = "promotion"
	EmailOrderConfirmation EmailTemplate = "order_confirmation"
)

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	Template EmailTemplate
	Data     map[string]any
}

// EmailSender delivers outbound email.
type EmailSender interface {
	Send(ctx context.Context, email *Email) error
}
