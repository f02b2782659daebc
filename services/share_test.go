package services

import (
	"strings"
	"testing"
)

func TestWhatsAppShareURL(t *testing.T) {
	doc := &Document{
		Kind:          KindQuotation,
		Number:        "QT-123456",
		CustomerName:  "John Mwansa",
		CustomerPhone: "+260 977 123 456",
		Total:         232,
	}

	got := WhatsAppShareURL(doc)

	if !strings.HasPrefix(got, "https://wa.me/260977123456?text=") {
		t.Errorf("URL = %q, want wa.me link with digits-only phone", got)
	}
	if !strings.Contains(got, "QT-123456") {
		t.Errorf("URL %q does not carry the document number", got)
	}
	if !strings.Contains(got, "K%20232.00") {
		t.Errorf("URL %q does not carry the encoded total", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("URL %q contains '+'; spaces must encode as %%20", got)
	}
}

func TestWhatsAppShareURL_NoPhone(t *testing.T) {
	doc := &Document{Kind: KindInvoice, Number: "INV-000001"}

	got := WhatsAppShareURL(doc)

	// still a well-formed link, just with no digits
	if !strings.HasPrefix(got, "https://wa.me/?text=") {
		t.Errorf("URL = %q, want wa.me link with empty phone", got)
	}
}

func TestWhatsAppSummary(t *testing.T) {
	doc := &Document{
		Kind:         KindInvoice,
		Number:       "INV-654321",
		CustomerName: "Jane Banda",
		Total:        1160,
	}

	got := WhatsAppSummary(doc)

	for _, want := range []string{"Jane Banda", "invoice", "INV-654321", "K 1160.00", "RAMSTONE"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestEmailShareURL(t *testing.T) {
	doc := &Document{
		Kind:          KindQuotation,
		Number:        "QT-000042",
		CustomerEmail: "customer@example.com",
	}

	got := EmailShareURL(doc)

	if !strings.HasPrefix(got, "mailto:customer@example.com?subject=") {
		t.Errorf("URL = %q, want mailto with address and subject", got)
	}
	if !strings.Contains(got, "QT-000042") {
		t.Errorf("URL %q does not carry the document number", got)
	}
	if strings.Contains(got, "body=") {
		t.Errorf("URL %q carries a body; only the subject travels in the link", got)
	}
}

func TestEmailShareURL_NoAddress(t *testing.T) {
	doc := &Document{Kind: KindQuotation, Number: "QT-1"}

	got := EmailShareURL(doc)

	if !strings.HasPrefix(got, "mailto:?subject=") {
		t.Errorf("URL = %q, want mailto with empty address", got)
	}
}

func TestBuildEmailSummary(t *testing.T) {
	doc := &Document{
		Kind:         KindQuotation,
		Number:       "QT-7",
		CustomerName: "John",
		Total:        500,
	}

	got := BuildEmailSummary(doc)

	if got.Subject != "Quotation QT-7 - RAMSTONE" {
		t.Errorf("Subject = %q", got.Subject)
	}
	for _, want := range []string{"Dear John", "QT-7", "K 500.00"} {
		if !strings.Contains(got.Body, want) {
			t.Errorf("body %q missing %q", got.Body, want)
		}
	}
}

func TestWhatsAppContactURL(t *testing.T) {
	got := WhatsAppContactURL("")

	if !strings.HasPrefix(got, "https://wa.me/260974622334?text=") {
		t.Errorf("URL = %q, want business phone link", got)
	}
	if !strings.Contains(got, "Hello%21%20I%27m%20interested") {
		t.Errorf("URL %q does not carry the default message", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"+260 974 622 334", "260974622334"},
		{"(097) 462-2334", "0974622334"},
		{"", ""},
		{"no digits", ""},
	}

	for _, tt := range tests {
		if got := DigitsOnly(tt.raw); got != tt.expect {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.raw, got, tt.expect)
		}
	}
}

func TestPhoneDialerURL(t *testing.T) {
	if got := PhoneDialerURL(); got != "tel:+260974622334" {
		t.Errorf("PhoneDialerURL() = %q", got)
	}
}
