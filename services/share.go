package services

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppGeneralMessage is the pre-filled text for the site's contact
// buttons, as opposed to the per-document summaries below.
const WhatsAppGeneralMessage = "Hello! I'm interested in your services at Ramstone Creative Solutions."

// WhatsAppSummary builds the short share message for a document:
// customer name, kind, number and grand total. It is independent of
// the full layout.
func WhatsAppSummary(doc *Document) string {
	return fmt.Sprintf(
		"Hello %s,\n\nPlease find your %s (%s) attached.\n\nTotal Amount: %s\n\nThank you for choosing %s!",
		doc.CustomerName, doc.Kind, doc.Number, FormatKwacha(doc.Total), Ramstone.Name,
	)
}

// WhatsAppShareURL returns the wa.me deep link for a document. The
// phone number is reduced to digits only; a document without a phone
// still yields a well-formed link with an empty digit sequence.
func WhatsAppShareURL(doc *Document) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		DigitsOnly(doc.CustomerPhone), encodeURIComponent(WhatsAppSummary(doc)))
}

// WhatsAppContactURL is the deep link for the site's contact buttons,
// targeting the business phone with a pre-filled message.
func WhatsAppContactURL(message string) string {
	if message == "" {
		message = WhatsAppGeneralMessage
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		DigitsOnly(Ramstone.Phone), encodeURIComponent(message))
}

// EmailSummary is the subject and body text handed to the user's email
// client. Only the subject travels in the mailto link; the body is
// shown on the share panel for copying.
type EmailSummary struct {
	Subject string
	Body    string
}

// BuildEmailSummary builds the email share text for a document.
func BuildEmailSummary(doc *Document) EmailSummary {
	subject := fmt.Sprintf("%s %s - %s", doc.Kind.Title(), doc.Number, Ramstone.Name)
	body := fmt.Sprintf(
		"Dear %s,\n\nPlease find your %s attached.\n\n%s Number: %s\nTotal Amount: %s\n\nThank you for choosing %s.\n\nBest regards,\n%s\n%s",
		doc.CustomerName, doc.Kind, doc.Kind.Title(), doc.Number,
		FormatKwacha(doc.Total), Ramstone.Name, Ramstone.Name, Ramstone.PhoneFormatted,
	)
	return EmailSummary{Subject: subject, Body: body}
}

// EmailShareURL returns the mailto deep link for a document. An absent
// customer email yields an empty but still valid target.
func EmailShareURL(doc *Document) string {
	summary := BuildEmailSummary(doc)
	return fmt.Sprintf("mailto:%s?subject=%s", doc.CustomerEmail, encodeURIComponent(summary.Subject))
}

// PhoneDialerURL is the tel: deep link for the business phone.
func PhoneDialerURL() string {
	return "tel:" + Ramstone.Phone
}

// DigitsOnly strips everything but decimal digits from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent percent-encodes a deep-link parameter the way
// browsers do, with spaces as %20 rather than '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
