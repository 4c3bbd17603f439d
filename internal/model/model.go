package model

import "time"

// Transaction kinds
const (
	Income  = "income"
	Expense = "expense"
)

// User is the owner whose finances are tracked. PhoneNumber is the
// identifier the chat transport delivers as the sender id.
type User struct {
	ID             int64
	Name           string
	PhoneNumber    string
	InitialBalance float64
}

// Category is auto-created on first use per (name, type) pair
type Category struct {
	ID          int64
	Name        string
	Type        string
	Description string
}

type Transaction struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Category    string
	Type        string
	Amount      float64
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// Window is the concrete [Start, End] range resolved from a period
type Window struct {
	Start time.Time
	End   time.Time
}

// ReportOptions is command-scoped, never persisted
type ReportOptions struct {
	Period          string
	Count           int
	Limit           int
	Category        string
	StartDate       string
	EndDate         string
	GroupByCategory bool
	Export          bool
}

type CategoryGroup struct {
	Name         string
	Total        float64
	Transactions []Transaction
}

type DayGroup struct {
	Date         time.Time
	Transactions []Transaction
}

// Report holds one computed report. Exactly one of CategoryGroups and
// DayGroups is populated, both from the same Transactions slice, so the
// sum of bucket totals always equals TotalIncome/TotalExpense.
type Report struct {
	Transactions   []Transaction
	CategoryGroups []CategoryGroup
	DayGroups      []DayGroup
	TotalIncome    float64
	TotalExpense   float64
	NetAmount      float64
	Window         Window
	TotalCount     int
}

type Balance struct {
	InitialBalance float64
	Income         float64
	Expense        float64
	Current        float64
}
