package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

func TestParseReportOptions(t *testing.T) {
	testTable := []struct {
		name string
		args string
		want model.ReportOptions
	}{
		{
			name: "empty defaults to today with limit 10",
			args: "",
			want: model.ReportOptions{Period: "day", Limit: 10},
		},
		{
			name: "single count",
			args: "5",
			want: model.ReportOptions{Period: "day", Count: 5, Limit: 5},
		},
		{
			name: "single period keyword",
			args: "minggu",
			want: model.ReportOptions{Period: "minggu", Limit: 10},
		},
		{
			name: "single kategori groups by category",
			args: "kategori",
			want: model.ReportOptions{Period: "day", Limit: 10, GroupByCategory: true},
		},
		{
			name: "single export",
			args: "ekspor",
			want: model.ReportOptions{Period: "day", Limit: 10, Export: true},
		},
		{
			name: "single unmatched token becomes category filter",
			args: "Makanan",
			want: model.ReportOptions{Period: "day", Limit: 10, Category: "makanan"},
		},
		{
			name: "category filter with count",
			args: "makanan 10",
			want: model.ReportOptions{Period: "day", Count: 10, Limit: 10, Category: "makanan"},
		},
		{
			name: "date range consumes following tokens",
			args: "dari 2023-05-01 sampai 2023-05-31",
			want: model.ReportOptions{Period: "day", Limit: 10, StartDate: "2023-05-01", EndDate: "2023-05-31"},
		},
		{
			name: "english date range",
			args: "from 2023-05-01 to 2023-05-31",
			want: model.ReportOptions{Period: "day", Limit: 10, StartDate: "2023-05-01", EndDate: "2023-05-31"},
		},
		{
			name: "month grouped by category with export",
			args: "bulan kategori export",
			want: model.ReportOptions{Period: "bulan", Limit: 10, GroupByCategory: true, Export: true},
		},
		{
			name: "dangling dari keeps defaults",
			args: "minggu dari",
			want: model.ReportOptions{Period: "minggu", Limit: 10},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.want, ParseReportOptions(testCase.args))
		})
	}
}
