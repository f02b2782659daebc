package services

import (
	"strconv"
	"strings"
)

// ParseQuantity converts raw form text to a line item quantity.
// Non-numeric input and anything below 1 fall back to 1, so the
// derived amount stays valid whatever the user types.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParsePrice converts raw form text to a currency amount, falling back
// to 0 for non-numeric input. Values are not range-checked; validation
// is advisory on the form, not enforced here.
func ParsePrice(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
