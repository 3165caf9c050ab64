package mail

import (
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Message is one outbound email to the operator inbox.
type Message struct {
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender relays messages through an authenticated SMTP submission
// endpoint. The operator address doubles as sender and recipient.
type SMTPSender struct {
	client   *gomail.Client
	fromName string
	account  string
}

func NewSMTPSender(host string, port int, account, password string) (*SMTPSender, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(account),
		gomail.WithPassword(password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPSender{
		client:   client,
		fromName: "ItemHub Enquiry",
		account:  account,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.fromName, s.account); err != nil {
		return err
	}
	if err := m.To(s.account); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	return s.client.DialAndSendWithContext(ctx, m)
}
