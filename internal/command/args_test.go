package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	testTable := []struct {
		name        string
		args        string
		amount      float64
		category    string
		description string
	}{
		{
			name:        "full payload",
			args:        "50000, Makanan, Makan siang",
			amount:      50000,
			category:    "Makanan",
			description: "Makan siang",
		},
		{
			name:     "dot thousands separator removed",
			args:     "50.000, makanan",
			amount:   50000,
			category: "Makanan",
		},
		{
			name:        "description keeps its commas",
			args:        "25000, Makanan, nasi goreng, es teh, kerupuk",
			amount:      25000,
			category:    "Makanan",
			description: "nasi goreng, es teh, kerupuk",
		},
		{
			name:     "category casing normalized",
			args:     "10000, TRANSPORTASI",
			amount:   10000,
			category: "Transportasi",
		},
		{
			name:     "surrounding spaces trimmed",
			args:     "  7500 ,  kopi  ",
			amount:   7500,
			category: "Kopi",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			entry, err := ParseEntry(testCase.args)
			require.NoError(t, err)
			require.Equal(t, testCase.amount, entry.Amount)
			require.Equal(t, testCase.category, entry.Category)
			require.Equal(t, testCase.description, entry.Description)
		})
	}
}

func TestParseEntry_Invalid(t *testing.T) {
	testTable := []struct {
		name string
		args string
		err  error
	}{
		{
			name: "missing category",
			args: "50000",
			err:  ErrInvalidFormat,
		},
		{
			name: "empty payload",
			args: "",
			err:  ErrInvalidFormat,
		},
		{
			name: "amount is not a number",
			args: "abc, Makanan",
			err:  ErrInvalidAmount,
		},
		{
			name: "amount must be positive",
			args: "-500, Makanan",
			err:  ErrInvalidAmount,
		},
		{
			name: "zero amount",
			args: "0, Makanan",
			err:  ErrInvalidAmount,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ParseEntry(testCase.args)
			require.ErrorIs(t, err, testCase.err)
		})
	}
}
