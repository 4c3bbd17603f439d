package service

import (
	"math"
	"sort"
	"time"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

// UncategorizedLabel renders for transactions whose category didn't resolve
const UncategorizedLabel = "Tidak Terkategori"

// Aggregate computes totals over trxs and exactly one of the two
// grouping views. Both views are built from the same slice, so bucket
// totals always sum to the grand totals. Non-finite amounts contribute
// zero.
func Aggregate(trxs []model.Transaction, byCategory bool) *model.Report {
	rep := &model.Report{Transactions: trxs}
	for _, t := range trxs {
		amount := safeAmount(t.Amount)
		if t.Type == model.Income {
			rep.TotalIncome += amount
		} else {
			rep.TotalExpense += amount
		}
	}
	rep.NetAmount = rep.TotalIncome - rep.TotalExpense

	if byCategory {
		rep.CategoryGroups = groupByCategory(trxs)
	} else {
		rep.DayGroups = groupByDay(trxs)
	}
	return rep
}

// groupByCategory buckets by category display name, keeping the
// original newest-first order inside each bucket, and presents buckets
// by descending total
func groupByCategory(trxs []model.Transaction) []model.CategoryGroup {
	index := make(map[string]int)
	var groups []model.CategoryGroup
	for _, t := range trxs {
		name := t.Category
		if name == "" {
			name = UncategorizedLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, model.CategoryGroup{Name: name})
		}
		groups[i].Total += safeAmount(t.Amount)
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	return groups
}

// groupByDay buckets by the local calendar date of each transaction's
// own timestamp, newest date first, newest transaction first within a
// day
func groupByDay(trxs []model.Transaction) []model.DayGroup {
	index := make(map[time.Time]int)
	var groups []model.DayGroup
	for _, t := range trxs {
		day := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, t.Date.Location())
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, model.DayGroup{Date: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	for i := range groups {
		g := groups[i].Transactions
		sort.SliceStable(g, func(a, b int) bool {
			return g[a].Date.After(g[b].Date)
		})
	}
	return groups
}

func safeAmount(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
