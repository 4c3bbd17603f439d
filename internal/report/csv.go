package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

// ExportFile is the handle to a generated report file. The caller owns
// delivery and must remove Path on every exit path afterwards.
type ExportFile struct {
	Name        string
	Path        string
	RecordCount int
}

// ExportCSV serializes an already-aggregated report into a CSV file
// under the OS temp dir: a header row, one localized row per
// transaction and three trailing summary rows matching the aggregated
// totals. A failed write never leaves a partial file behind.
func ExportCSV(rep *model.Report, user *model.User) (*ExportFile, error) {
	name := fmt.Sprintf("laporan_keuangan_%s_%s_%s.csv",
		strings.ReplaceAll(user.Name, " ", "_"),
		time.Now().Format("2006-01-02"),
		uuid.NewString()[:8])
	path := filepath.Join(os.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("exporter couldn't create file: %v", err)
	}

	if err = writeCSV(f, rep); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("exporter couldn't write file: %v", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("exporter couldn't close file: %v", err)
	}

	return &ExportFile{
		Name:        name,
		Path:        path,
		RecordCount: len(rep.Transactions),
	}, nil
}

func writeCSV(f *os.File, rep *model.Report) error {
	var b strings.Builder
	b.WriteString("Tanggal,Tipe,Kategori,Jumlah,Deskripsi\n")

	for _, t := range rep.Transactions {
		kind := "Pengeluaran"
		if t.Type == model.Income {
			kind = "Pemasukan"
		}
		description := ""
		if t.Description != "" {
			description = `"` + strings.ReplaceAll(t.Description, `"`, `""`) + `"`
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			t.Date.Format("02/01/2006"), kind, t.Category, decimalComma(t.Amount), description)
	}

	fmt.Fprintf(&b, "\nTotal Pemasukan,%s\n", decimalComma(rep.TotalIncome))
	fmt.Fprintf(&b, "Total Pengeluaran,%s\n", decimalComma(rep.TotalExpense))
	fmt.Fprintf(&b, "Selisih,%s\n", decimalComma(rep.NetAmount))

	_, err := f.WriteString(b.String())
	return err
}
