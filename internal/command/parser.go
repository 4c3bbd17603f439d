// Package command turns raw message text into canonical commands.
package command

import "strings"

// Marker prefixes every explicit command token
const Marker = "/"

type Action string

const (
	ActionAddExpense Action = "add-expense"
	ActionAddIncome  Action = "add-income"
	ActionBalance    Action = "balance"
	ActionReport     Action = "report"
	ActionHelp       Action = "help"
	ActionUnknown    Action = "unknown"
)

type Command struct {
	Action Action
	Args   string
}

// aliases is a fixed lookup table, not pattern inference
var aliases = map[string]Action{
	"info":    ActionHelp,
	"bantuan": ActionHelp,
	"help":    ActionHelp,
	"h":       ActionHelp,
	"i":       ActionHelp,

	"tambah":  ActionAddExpense,
	"t":       ActionAddExpense,
	"keluar":  ActionAddExpense,
	"k":       ActionAddExpense,
	"expense": ActionAddExpense,
	"e":       ActionAddExpense,

	"masuk":  ActionAddIncome,
	"m":      ActionAddIncome,
	"income": ActionAddIncome,
	"in":     ActionAddIncome,

	"saldo":   ActionBalance,
	"s":       ActionBalance,
	"balance": ActionBalance,
	"b":       ActionBalance,

	"laporan": ActionReport,
	"l":       ActionReport,
	"report":  ActionReport,
	"r":       ActionReport,
}

// presetReports are the fixed-period report shortcuts; their argument
// string is preset and anything the user typed after them is ignored.
var presetReports = map[string]string{
	"lh": "hari",
	"lm": "minggu",
	"lb": "bulan",
	"lt": "tahun",
	"lk": "kategori",
}

// Parse returns the canonical command for text. Empty input returns
// ok=false and must produce no reply at all. Text without the command
// marker is the default add-expense command with the full text as
// arguments. Unknown marker-prefixed tokens return ActionUnknown, which
// the dispatcher routes to the help pointer reply.
func Parse(text string) (Command, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Command{}, false
	}

	if !strings.HasPrefix(trimmed, Marker) {
		return Command{Action: ActionAddExpense, Args: trimmed}, true
	}

	parts := strings.SplitN(trimmed, " ", 2)
	token := strings.ToLower(strings.TrimPrefix(parts[0], Marker))
	args := ""
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}

	if preset, ok := presetReports[token]; ok {
		return Command{Action: ActionReport, Args: preset}, true
	}
	action, ok := aliases[token]
	if !ok {
		return Command{Action: ActionUnknown, Args: args}, true
	}
	return Command{Action: action, Args: args}, true
}
