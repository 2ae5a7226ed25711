package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the signup welcome email.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// BookingConfirmationEmailData holds data for the registration confirmation email.
type BookingConfirmationEmailData struct {
	Email     string
	UserName  string
	EventName string
	Date      string
	Location  string
	Venue     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationEmailData) error
}
