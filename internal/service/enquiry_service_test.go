package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/itemhub/itemhub/internal/mail"
)

type fakeSender struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestSendEnquiryWithPlaceholders(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEnquiryService(sender)

	if err := svc.SendEnquiry(context.Background(), "x", "Lamp", "", ""); err != nil {
		t.Fatalf("SendEnquiry: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent=%d want 1", len(sender.sent))
	}
	body := sender.sent[0].HTML
	if !strings.Contains(body, "Not provided") || !strings.Contains(body, "No message provided.") {
		t.Fatalf("placeholders missing from body: %s", body)
	}
}

func TestSendEnquiryEscapesMessage(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEnquiryService(sender)

	if err := svc.SendEnquiry(context.Background(), "x", "Lamp", "a@b.c", "<script>bad()</script>"); err != nil {
		t.Fatalf("SendEnquiry: %v", err)
	}
	if strings.Contains(sender.sent[0].HTML, "<script>") {
		t.Fatal("raw markup reached outgoing email")
	}
}

func TestSendEnquiryRelayFailure(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("smtp down")}
	svc := NewEnquiryService(sender)

	if err := svc.SendEnquiry(context.Background(), "x", "Lamp", "", ""); err == nil {
		t.Fatal("expected relay error")
	}
}

func TestSendContactValidation(t *testing.T) {
	tests := []struct {
		name               string
		person, email, msg string
	}{
		{"missing name", "", "a@b.c", "hi"},
		{"missing email", "Jane", "", "hi"},
		{"missing message", "Jane", "a@b.c", ""},
		{"whitespace only", "  ", "a@b.c", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewEnquiryService(sender)
			err := svc.SendContact(context.Background(), tt.person, tt.email, tt.msg)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err=%v, want ErrValidation", err)
			}
			if len(sender.sent) != 0 {
				t.Fatal("email sent despite validation failure")
			}
		})
	}
}

func TestSendContactDispatches(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEnquiryService(sender)

	if err := svc.SendContact(context.Background(), "Jane", "jane@example.com", "Hello"); err != nil {
		t.Fatalf("SendContact: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent=%d want 1", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].Subject, "Jane") {
		t.Fatalf("subject=%q", sender.sent[0].Subject)
	}
}
