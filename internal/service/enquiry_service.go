package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/itemhub/itemhub/internal/mail"
)

// EnquiryService relays enquiry and contact messages to the operator
// inbox. Nothing is persisted; a message exists only for the duration
// of the send.
type EnquiryService interface {
	SendEnquiry(ctx context.Context, itemID, itemName, userEmail, userMessage string) error
	SendContact(ctx context.Context, name, email, message string) error
}

type enquiryService struct {
	sender mail.Sender
}

func NewEnquiryService(sender mail.Sender) EnquiryService {
	return &enquiryService{sender: sender}
}

// SendEnquiry has no required fields; the mail builder substitutes
// placeholders for whatever the user left out.
func (s *enquiryService) SendEnquiry(ctx context.Context, itemID, itemName, userEmail, userMessage string) error {
	msg := mail.Enquiry(
		strings.TrimSpace(itemID),
		strings.TrimSpace(itemName),
		strings.TrimSpace(userEmail),
		strings.TrimSpace(userMessage),
	)
	return s.sender.Send(ctx, msg)
}

func (s *enquiryService) SendContact(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	return s.sender.Send(ctx, mail.Contact(name, email, message))
}
