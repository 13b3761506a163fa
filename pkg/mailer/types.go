package mailer

// Config holds SMTP transport configuration.
type Config struct {
	Host     string // optional, defaults to DefaultHost
	Port     int    // optional, defaults to DefaultPort
	Username string // sender account, also used as From
	Password string // account password or app password
	// Recipient is the default destination used when a message has no
	// explicit To address.
	Recipient string
}

// Message is a single outbound email.
type Message struct {
	To      string // optional, falls back to the configured recipient
	Subject string
	Body    string
}
