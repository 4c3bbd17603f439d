package command

import (
	"strconv"
	"strings"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

// DefaultLimit is the number of transactions a report shows when the
// user doesn't ask for a specific count
const DefaultLimit = 10

var periodTokens = map[string]bool{
	"hari": true, "day": true,
	"minggu": true, "week": true,
	"bulan": true, "month": true,
	"tahun": true, "year": true,
}

// ParseReportOptions parses the space-delimited report option tokens.
// A single bare argument is tried as a count first, then as a period
// keyword, then as a structural option, and finally falls back to a
// category-name filter. With several arguments every token is matched
// independently; "dari"/"from" and "sampai"/"to" consume the following
// token as a date.
func ParseReportOptions(args string) model.ReportOptions {
	opts := model.ReportOptions{
		Period: "day",
		Limit:  DefaultLimit,
	}

	fields := strings.Fields(strings.ToLower(strings.TrimSpace(args)))
	if len(fields) == 0 {
		return opts
	}

	if len(fields) == 1 {
		arg := fields[0]
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			opts.Count = n
			opts.Limit = n
			return opts
		}
		if periodTokens[arg] {
			opts.Period = arg
			return opts
		}
		if arg == "kategori" {
			opts.GroupByCategory = true
			return opts
		}
		if arg == "export" || arg == "ekspor" {
			opts.Export = true
			return opts
		}
		opts.Category = arg
		return opts
	}

	for i := 0; i < len(fields); i++ {
		arg := fields[i]
		switch {
		case arg == "kategori" || arg == "category":
			opts.GroupByCategory = true
		case arg == "export" || arg == "ekspor":
			opts.Export = true
		case arg == "dari" || arg == "from":
			if i+1 < len(fields) {
				opts.StartDate = fields[i+1]
				i++
			}
		case arg == "sampai" || arg == "to":
			if i+1 < len(fields) {
				opts.EndDate = fields[i+1]
				i++
			}
		case periodTokens[arg]:
			opts.Period = arg
		default:
			if n, err := strconv.Atoi(arg); err == nil && n > 0 {
				opts.Count = n
				opts.Limit = n
				continue
			}
			opts.Category = arg
		}
	}
	return opts
}
