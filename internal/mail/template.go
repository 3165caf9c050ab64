package mail

import (
	"fmt"
	"strings"
)

const (
	placeholderEmail   = "Not provided"
	placeholderMessage = "No message provided."
)

var markupEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// EscapeMarkup neutralizes angle brackets so user text can never
// introduce tags into the HTML email body.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// Enquiry builds the operator notification for an item enquiry. Email
// and message are optional; fixed placeholders stand in when absent.
func Enquiry(itemID, itemName, userEmail, userMessage string) Message {
	subjectName := itemName
	if subjectName == "" {
		subjectName = "Unnamed Item"
	}
	bodyName := itemName
	if bodyName == "" {
		bodyName = "Not specified"
	}
	bodyID := itemID
	if bodyID == "" {
		bodyID = "Not provided"
	}
	safeEmail := userEmail
	if safeEmail == "" {
		safeEmail = placeholderEmail
	}
	safeMessage := placeholderMessage
	if userMessage != "" {
		safeMessage = EscapeMarkup(userMessage)
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
  <h2 style="color: #4f46e5;">New Enquiry Received</h2>
  <p><strong>Item Name:</strong> %s</p>
  <p><strong>Item ID:</strong> %s</p>
  <p><strong>Sender Email:</strong> %s</p>
  <div style="margin-top: 20px;">
    <p><strong>Message:</strong></p>
    <div style="background-color: #f1f5f9; padding: 16px; border-left: 4px solid #4f46e5; border-radius: 6px;">
      %s
    </div>
  </div>
  <p style="margin-top: 30px; color: #666; font-size: 0.85rem;">
    This enquiry was submitted from your <strong>ItemHub</strong> website.
  </p>
</div>`, bodyName, bodyID, safeEmail, safeMessage)

	return Message{
		Subject: fmt.Sprintf("New Enquiry for: %s", subjectName),
		HTML:    html,
	}
}

// Contact builds the operator notification for a contact-form message.
// All fields are validated upstream; escaping still applies here.
func Contact(name, email, message string) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
  <h2 style="color: #4f46e5;">New Contact Message</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <div style="margin-top: 20px;">
    <p><strong>Message:</strong></p>
    <div style="background-color: #f1f5f9; padding: 16px; border-left: 4px solid #4f46e5; border-radius: 6px;">
      %s
    </div>
  </div>
  <p style="margin-top: 30px; color: #666; font-size: 0.85rem;">
    This message was submitted from your <strong>ItemHub</strong> contact page.
  </p>
</div>`, EscapeMarkup(name), EscapeMarkup(email), EscapeMarkup(message))

	return Message{
		Subject: fmt.Sprintf("New Contact Message from: %s", name),
		HTML:    html,
	}
}
