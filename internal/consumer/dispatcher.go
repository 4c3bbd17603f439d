package consumer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keuanganbot/keuanganbot/internal/command"
	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/notifier"
	"github.com/keuanganbot/keuanganbot/internal/report"
	"github.com/keuanganbot/keuanganbot/internal/repository"
	"github.com/keuanganbot/keuanganbot/internal/service"
)

// Message is one inbound chat event
type Message struct {
	SenderID string
	Text     string
}

// Dispatcher routes one inbound message through the command table and
// produces exactly one reply artifact per recognized command. A failure
// inside a branch never propagates past Dispatch.
type Dispatcher struct {
	users    repository.Users
	recorder service.Recorder
	balancer service.Balancer
	reporter service.Reporter
	notifier notifier.Notifier
}

func NewDispatcher(users repository.Users, recorder service.Recorder, balancer service.Balancer,
	reporter service.Reporter, notifier notifier.Notifier) *Dispatcher {
	return &Dispatcher{
		users:    users,
		recorder: recorder,
		balancer: balancer,
		reporter: reporter,
		notifier: notifier,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("dispatcher recovered from panic: %v", r)
			d.reply(msg.SenderID, apologyReply)
		}
	}()

	cmd, ok := command.Parse(msg.Text)
	if !ok {
		// empty or non-text input gets no reply at all
		return
	}

	switch cmd.Action {
	case command.ActionHelp:
		d.reply(msg.SenderID, helpReply)
	case command.ActionAddExpense:
		d.handleAdd(ctx, msg, model.Expense, cmd.Args)
	case command.ActionAddIncome:
		d.handleAdd(ctx, msg, model.Income, cmd.Args)
	case command.ActionBalance:
		d.handleBalance(ctx, msg)
	case command.ActionReport:
		if strings.EqualFold(strings.TrimSpace(cmd.Args), "bantuan") {
			d.reply(msg.SenderID, reportHelpReply)
			return
		}
		d.handleReport(ctx, msg, cmd.Args)
	default:
		d.reply(msg.SenderID, unrecognizedReply)
	}
}

func (d *Dispatcher) handleAdd(ctx context.Context, msg Message, kind, args string) {
	user, ok := d.lookupUser(ctx, msg)
	if !ok {
		return
	}

	entry, err := command.ParseEntry(args)
	if err == command.ErrInvalidFormat {
		d.reply(msg.SenderID, invalidFormatReply(kind))
		return
	}
	if err == command.ErrInvalidAmount {
		d.reply(msg.SenderID, invalidAmountReply)
		return
	}

	trx, err := d.recorder.Add(ctx, user.ID, kind, entry.Amount, entry.Category, entry.Description)
	if err != nil {
		logrus.Errorf("dispatcher couldn't add transaction for %s: %v", msg.SenderID, err)
		d.reply(msg.SenderID, addFailedReply)
		return
	}
	d.reply(msg.SenderID, addedReply(trx))
}

func (d *Dispatcher) handleBalance(ctx context.Context, msg Message) {
	user, ok := d.lookupUser(ctx, msg)
	if !ok {
		return
	}

	balance, err := d.balancer.Current(ctx, user)
	if err != nil {
		logrus.Errorf("dispatcher couldn't get balance for %s: %v", msg.SenderID, err)
		d.reply(msg.SenderID, balanceFailedReply)
		return
	}
	d.reply(msg.SenderID, balanceReply(user, balance))
}

func (d *Dispatcher) handleReport(ctx context.Context, msg Message, args string) {
	user, ok := d.lookupUser(ctx, msg)
	if !ok {
		return
	}

	opts := command.ParseReportOptions(args)
	rep, err := d.reporter.Report(ctx, user.ID, opts, time.Now())
	if err != nil {
		logrus.Errorf("dispatcher couldn't build report for %s: %v", msg.SenderID, err)
		d.reply(msg.SenderID, reportFailedReply)
		return
	}

	text := report.Format(rep, opts)

	if !opts.Export || len(rep.Transactions) == 0 {
		d.reply(msg.SenderID, text)
		return
	}

	file, err := report.ExportCSV(rep, user)
	if err != nil {
		logrus.Errorf("dispatcher couldn't export report for %s: %v", msg.SenderID, err)
		d.reply(msg.SenderID, text+"\n\n❌ *Gagal membuat file laporan*")
		return
	}
	defer func() {
		if err = os.Remove(file.Path); err != nil {
			logrus.Errorf("dispatcher couldn't remove export file %s: %v", file.Path, err)
		}
	}()

	d.reply(msg.SenderID, text)
	caption := fmt.Sprintf("📊 Laporan Keuangan (%d transaksi)\nPeriode: %s",
		file.RecordCount, report.PeriodLabel(opts, rep.Window))
	if err = d.notifier.SendFile(msg.SenderID, file.Path, caption); err != nil {
		logrus.Errorf("dispatcher couldn't send export file to %s: %v", msg.SenderID, err)
	}
}

// lookupUser resolves the sender to a registered user, sending the
// registration pointer reply itself when there is none
func (d *Dispatcher) lookupUser(ctx context.Context, msg Message) (*model.User, bool) {
	user, err := d.users.GetByPhone(ctx, msg.SenderID)
	if err == repository.ErrNotRegistered {
		d.reply(msg.SenderID, notRegisteredReply)
		return nil, false
	}
	if err != nil {
		logrus.Errorf("dispatcher couldn't look up user %s: %v", msg.SenderID, err)
		d.reply(msg.SenderID, apologyReply)
		return nil, false
	}
	return user, true
}

func (d *Dispatcher) reply(recipientID, text string) {
	if err := d.notifier.SendText(recipientID, text); err != nil {
		logrus.Errorf("dispatcher couldn't send reply to %s: %v", recipientID, err)
	}
}

func invalidFormatReply(kind string) string {
	prefix, example := "", "50000, Makanan, Makan siang"
	if kind == model.Income {
		prefix, example = "/masuk ", "/masuk 1000000, Gaji, Gaji bulanan"
	}
	return fmt.Sprintf("❌ *Format tidak valid*\n\nGunakan: %s[jumlah], [kategori], [keterangan]\n\n*Contoh:*\n%s", prefix, example)
}

func addedReply(trx *model.Transaction) string {
	icon, kind := "[-]", "Pengeluaran"
	if trx.Type == model.Income {
		icon, kind = "[+]", "Pemasukan"
	}
	return fmt.Sprintf("%s *Transaksi Berhasil!*\n\n"+
		"*Tipe:* %s\n"+
		"*Jumlah:* %s\n"+
		"*Kategori:* %s\n"+
		"*Deskripsi:* %s\n\n"+
		"✅ Transaksi telah dicatat pada %s",
		icon, kind, report.FormatCurrency(trx.Amount), trx.Category, orDash(trx.Description), report.FormatDate(trx.Date))
}

func balanceReply(user *model.User, balance *model.Balance) string {
	mood := "😊"
	if balance.Current < 0 {
		mood = "😱"
	}
	return fmt.Sprintf("💰 *INFORMASI SALDO*\n\n"+
		"*Nama:* %s\n"+
		"*Tanggal:* %s\n\n"+
		"*Saldo Awal:* %s\n"+
		"*Total Pemasukan:* %s ⬆️\n"+
		"*Total Pengeluaran:* %s ⬇️\n"+
		"*─────────────────*\n"+
		"*Saldo Saat Ini:* %s %s\n\n"+
		"Untuk melihat laporan transaksi, ketik */laporan*",
		user.Name, report.FormatDate(time.Now()),
		report.FormatCurrency(balance.InitialBalance),
		report.FormatCurrency(balance.Income),
		report.FormatCurrency(balance.Expense),
		report.FormatCurrency(balance.Current), mood)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
