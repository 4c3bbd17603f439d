package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

func TestResolve_SymbolicTokens(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 5, 7, 15, 30, 0, 0, time.Local)

	testTable := []struct {
		name   string
		period string
		start  time.Time
	}{
		{
			name:   "day starts at local midnight",
			period: "hari",
			start:  time.Date(2025, 5, 7, 0, 0, 0, 0, time.Local),
		},
		{
			name:   "week on a wednesday starts two days back",
			period: "week",
			start:  time.Date(2025, 5, 5, 0, 0, 0, 0, time.Local),
		},
		{
			name:   "month starts on the 1st",
			period: "bulan",
			start:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name:   "year starts january 1st",
			period: "tahun",
			start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name:   "unrecognized token falls back to day",
			period: "fortnight",
			start:  time.Date(2025, 5, 7, 0, 0, 0, 0, time.Local),
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			window, limit := Resolve(model.ReportOptions{Period: testCase.period, Limit: 10}, now)
			require.Equal(t, testCase.start, window.Start)
			require.Equal(t, now, window.End)
			require.Equal(t, 10, limit)
		})
	}
}

func TestResolve_WeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	now := time.Date(2025, 5, 11, 9, 0, 0, 0, time.Local)
	window, _ := Resolve(model.ReportOptions{Period: "minggu", Limit: 10}, now)
	require.Equal(t, time.Date(2025, 5, 5, 0, 0, 0, 0, time.Local), window.Start)
	require.Equal(t, time.Monday, window.Start.Weekday())
}

func TestResolve_Count(t *testing.T) {
	now := time.Date(2025, 5, 7, 15, 30, 0, 0, time.Local)
	window, limit := Resolve(model.ReportOptions{Period: "day", Count: 5, Limit: 5}, now)
	require.Equal(t, time.Unix(0, 0), window.Start)
	require.Equal(t, now, window.End)
	require.Equal(t, 5, limit)
}

func TestResolve_ExplicitDates(t *testing.T) {
	now := time.Date(2025, 5, 7, 15, 30, 0, 0, time.Local)

	window, limit := Resolve(model.ReportOptions{StartDate: "2023-05-01", EndDate: "2023-05-31", Limit: 10}, now)
	require.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.Local), window.Start)
	require.Equal(t, time.Date(2023, 5, 31, 0, 0, 0, 0, time.Local), window.End)
	require.Equal(t, 10, limit)

	// no end date means up to now
	window, _ = Resolve(model.ReportOptions{StartDate: "2023-05-01", Limit: 10}, now)
	require.Equal(t, now, window.End)

	// an invalid start date falls through to the day rule
	window, _ = Resolve(model.ReportOptions{StartDate: "2023-02-31", Period: "day", Limit: 10}, now)
	require.Equal(t, time.Date(2025, 5, 7, 0, 0, 0, 0, time.Local), window.Start)
}

func TestParseDate(t *testing.T) {
	testTable := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "valid", value: "2023-05-01", ok: true},
		{name: "wrong shape", value: "01-05-2023", ok: false},
		{name: "not a real date", value: "2023-02-31", ok: false},
		{name: "garbage", value: "besok", ok: false},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			_, ok := ParseDate(testCase.value, time.Local)
			require.Equal(t, testCase.ok, ok)
		})
	}
}
