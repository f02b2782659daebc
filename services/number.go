package services

import (
	"fmt"
	"time"
)

// NewDocumentNumber derives a default document number from the current
// timestamp: the kind prefix plus the last six digits of the unix
// millisecond clock. The number is free text and the user may replace
// it on the form.
func NewDocumentNumber(kind DocumentKind, now time.Time) string {
	prefix := "QT"
	if kind == KindInvoice {
		prefix = "INV"
	}
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("%s-%s", prefix, millis)
}
