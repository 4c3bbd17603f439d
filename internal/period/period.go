// Package period resolves symbolic or literal period specifiers into
// concrete date windows.
package period

import (
	"regexp"
	"time"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve turns the period part of opts into a window in now's location
// plus the effective result limit. Priority order:
//
//  1. a valid explicit start date wins: window runs from that date at
//     midnight until the end date at midnight when present, else now;
//  2. a positive count N gives an unbounded window with limit N, the
//     N most recent records regardless of age;
//  3. a symbolic token picks today/this week/this month/this year, where
//     a week starts on the Monday of the current week;
//  4. anything else silently falls back to the day window.
func Resolve(opts model.ReportOptions, now time.Time) (model.Window, int) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	if opts.StartDate != "" {
		if start, ok := ParseDate(opts.StartDate, now.Location()); ok {
			end := now
			if opts.EndDate != "" {
				if e, ok := ParseDate(opts.EndDate, now.Location()); ok {
					end = e
				}
			}
			return model.Window{Start: start, End: end}, limit
		}
	}

	if opts.Count > 0 {
		return model.Window{Start: time.Unix(0, 0), End: now}, opts.Count
	}

	switch opts.Period {
	case "minggu", "week":
		return model.Window{Start: startOfWeek(now), End: now}, limit
	case "bulan", "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return model.Window{Start: start, End: now}, limit
	case "tahun", "year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return model.Window{Start: start, End: now}, limit
	default:
		// "hari", "day" and every unrecognized token
		return model.Window{Start: midnight(now), End: now}, limit
	}
}

// ParseDate validates a YYYY-MM-DD string against a real calendar date
// and returns it at local midnight
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if !dateFormat.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek is the Monday of t's week at midnight. Sunday belongs to
// the week that started six days earlier.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return midnight(t.AddDate(0, 0, -offset))
}
