package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/period"
)

// topPerCategory is how many transaction summaries a category bucket shows
const topPerCategory = 3

// PeriodLabel names the reported period for display
func PeriodLabel(opts model.ReportOptions, window model.Window) string {
	if opts.StartDate != "" {
		if _, ok := period.ParseDate(opts.StartDate, time.Local); ok {
			if opts.EndDate != "" {
				if _, ok = period.ParseDate(opts.EndDate, time.Local); ok {
					return fmt.Sprintf("%s s/d %s", FormatDate(window.Start), FormatDate(window.End))
				}
			}
			return "Sejak " + FormatDate(window.Start)
		}
	}
	if opts.Count > 0 {
		return fmt.Sprintf("%d Transaksi Terakhir", opts.Count)
	}
	switch opts.Period {
	case "minggu", "week":
		return "Minggu Ini"
	case "bulan", "month":
		return "Bulan Ini"
	case "tahun", "year":
		return "Tahun Ini"
	default:
		return "Hari Ini"
	}
}

// Format renders a computed report into the reply text: period label,
// summary lines, then either the per-category or the per-day detail
// view, with a truncation notice when fewer transactions are rendered
// than matched.
func Format(rep *model.Report, opts model.ReportOptions) string {
	label := PeriodLabel(opts, rep.Window)

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *LAPORAN TRANSAKSI %s*\n\n", strings.ToUpper(label))

	b.WriteString("*Ringkasan:*\n")
	fmt.Fprintf(&b, "▫️ Total Pemasukan: %s 💰\n", FormatCurrency(rep.TotalIncome))
	fmt.Fprintf(&b, "▫️ Total Pengeluaran: %s 💸\n", FormatCurrency(rep.TotalExpense))
	mark := "✅"
	if rep.NetAmount < 0 {
		mark = "❗"
	}
	fmt.Fprintf(&b, "▫️ *Selisih: %s* %s\n\n", FormatCurrency(rep.NetAmount), mark)

	if len(rep.Transactions) == 0 {
		fmt.Fprintf(&b, "Tidak ada transaksi dalam periode %s.", strings.ToLower(label))
		return b.String()
	}

	if rep.CategoryGroups != nil {
		writeCategoryGroups(&b, rep.CategoryGroups)
	} else {
		writeDayGroups(&b, rep.DayGroups)
	}

	if len(rep.Transactions) < rep.TotalCount {
		fmt.Fprintf(&b, "\n*Total %d dari %d transaksi ditampilkan*\n", len(rep.Transactions), rep.TotalCount)
	}
	b.WriteString("\nKetik */laporan bantuan* untuk opsi filter lebih lanjut")
	return b.String()
}

func writeCategoryGroups(b *strings.Builder, groups []model.CategoryGroup) {
	b.WriteString("*Laporan Per Kategori:*\n\n")
	for _, group := range groups {
		fmt.Fprintf(b, "*%s*: %s\n", group.Name, FormatCurrency(group.Total))

		top := group.Transactions
		if len(top) > topPerCategory {
			top = top[:topPerCategory]
		}
		for _, t := range top {
			fmt.Fprintf(b, "  %s %s: %s (%s)\n", typeIcon(t.Type), FormatDateTime(t.Date), orDash(t.Description), FormatCurrency(t.Amount))
		}
		if len(group.Transactions) > topPerCategory {
			fmt.Fprintf(b, "  ...dan %d transaksi lainnya\n", len(group.Transactions)-topPerCategory)
		}
		b.WriteString("\n")
	}
}

func writeDayGroups(b *strings.Builder, groups []model.DayGroup) {
	b.WriteString("*Daftar Transaksi:*\n")
	for _, day := range groups {
		fmt.Fprintf(b, "\n📅 *%s*\n\n", FormatDateLong(day.Date))
		for _, t := range day.Transactions {
			fmt.Fprintf(b, "%s %s | %s\n", typeIcon(t.Type), formatClock(t.Date), FormatCurrency(t.Amount))
			category := t.Category
			if category == "" {
				category = "Tidak Terkategori"
			}
			fmt.Fprintf(b, "  %s: %s\n", category, orDash(t.Description))
		}
	}
}

func typeIcon(kind string) string {
	if kind == model.Income {
		return "[+]"
	}
	return "[-]"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
