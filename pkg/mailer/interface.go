package mailer

// IMailer defines the interface for the outbound mail transport.
// Send is not idempotent: repeated identical calls send repeated messages.
type IMailer interface {
	Send(msg Message) error
}
