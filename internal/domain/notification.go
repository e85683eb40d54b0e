package domain

import "context"

// NotificationChannel identifies one leg of the intake fan-out.
type NotificationChannel string

const (
	ChannelFirmEmail   NotificationChannel = "firm-email"
	ChannelClientEmail NotificationChannel = "client-email"
	ChannelClientSMS   NotificationChannel = "client-sms"
)

// NotificationOutcome is the settled result of a single dispatch attempt.
// Diagnostic is only set on failure and never leaves the server logs.
type NotificationOutcome struct {
	Channel    NotificationChannel
	Success    bool
	Diagnostic string
}

// NotificationReport is the per-channel success summary returned to the
// caller. The top-level request succeeds regardless of these flags.
type NotificationReport struct {
	FirmEmail   bool `json:"firmEmail"`
	ClientEmail bool `json:"clientEmail"`
	SMS         bool `json:"sms"`
}

// EmailMessage is a single outbound email for the email gateway.
type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailGateway sends transactional email through the provider's HTTP API.
type EmailGateway interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SMSGateway sends a text message. Implementations perform their own token
// exchange per send; there is no token caching across requests.
type SMSGateway interface {
	Send(ctx context.Context, to, text string) error
}
