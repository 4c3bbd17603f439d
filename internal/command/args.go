package command

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidFormat = errors.New("expected amount, category[, description]")
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

// Entry is the parsed add-transaction payload
type Entry struct {
	Amount      float64
	Category    string
	Description string
}

// ParseEntry parses the comma-delimited transaction payload. The amount
// field is normalized for the locale before parsing: dots are thousands
// separators and are removed, commas become the decimal point. Fields
// after the second are rejoined with ", " so descriptions may contain
// commas.
func ParseEntry(args string) (*Entry, error) {
	parts := strings.Split(args, ",")
	if len(parts) < 2 {
		return nil, ErrInvalidFormat
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	raw := strings.ReplaceAll(parts[0], ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}

	entry := Entry{
		Amount:   amount,
		Category: displayCase(parts[1]),
	}
	if len(parts) > 2 {
		entry.Description = strings.Join(parts[2:], ", ")
	}
	return &entry, nil
}

// displayCase normalizes a category name to "first letter uppercase,
// rest lowercase" regardless of input casing
func displayCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
