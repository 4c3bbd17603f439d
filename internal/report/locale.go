// Package report renders computed report data into reply text and
// downloadable files.
package report

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthsShort = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var weekdays = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var weekdaysShort = [...]string{
	"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab",
}

// FormatCurrency renders a 0-decimal rupiah value with dot thousands
// separators. NaN and infinities render as zero.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	n := int64(math.Round(math.Abs(amount)))
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if amount < 0 && n != 0 {
		return "-Rp" + s
	}
	return "Rp" + s
}

// FormatDate renders "4 Mei 2025"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// FormatDateLong renders "Minggu, 4 Mei 2025"
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%s, %s", weekdays[t.Weekday()], FormatDate(t))
}

// FormatDateTime renders "Min, 4 Mei 2025 14:05"; an unset timestamp
// degrades to a placeholder instead of raising
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "Tanggal tidak valid"
	}
	return fmt.Sprintf("%s, %d %s %d %02d:%02d",
		weekdaysShort[t.Weekday()], t.Day(), monthsShort[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "??:??"
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func decimalComma(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i] + "," + s[i+1:]
		}
	}
	return s
}
