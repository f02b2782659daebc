package services

import (
	"fmt"
	"time"
)

// FormatKwacha formats an amount as Zambian Kwacha with exactly two
// decimal places, e.g. "K 1250.00".
func FormatKwacha(amount float64) string {
	return fmt.Sprintf("K %.2f", amount)
}

// FormatDate converts a stored YYYY-MM-DD date into the dd/mm/yyyy
// form used on the rendered documents. Unparseable input is returned
// unchanged rather than dropped.
func FormatDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}
