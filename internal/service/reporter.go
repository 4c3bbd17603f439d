package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/period"
	"github.com/keuanganbot/keuanganbot/internal/repository"
)

type Reporter interface {
	Report(ctx context.Context, userID int64, opts model.ReportOptions, now time.Time) (*model.Report, error)
}

type reporter struct {
	repo repository.Finance
}

func NewReporter(repo repository.Finance) *reporter {
	return &reporter{
		repo: repo,
	}
}

// Report resolves the window, queries matching transactions newest
// first and aggregates them. A category filter that matches no category
// is dropped rather than producing an empty result. Grouping by
// category queries the full matching set; the count limit only applies
// to the flat/per-day view.
func (r *reporter) Report(ctx context.Context, userID int64, opts model.ReportOptions, now time.Time) (*model.Report, error) {
	window, limit := period.Resolve(opts, now)

	var categoryID int64
	if opts.Category != "" {
		c, err := r.repo.FindCategory(ctx, opts.Category)
		if err != nil {
			return nil, fmt.Errorf("reporter couldn't find category: %v", err)
		}
		if c != nil {
			categoryID = c.ID
		} else {
			logrus.Infof("reporter: no category matches %q, filter dropped", opts.Category)
		}
	}

	if opts.GroupByCategory {
		limit = 0
	}

	trxs, err := r.repo.ListTransactions(ctx, userID, window, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("reporter couldn't list transactions: %v", err)
	}
	total, err := r.repo.CountTransactions(ctx, userID, window, categoryID)
	if err != nil {
		return nil, fmt.Errorf("reporter couldn't count transactions: %v", err)
	}

	rep := Aggregate(trxs, opts.GroupByCategory)
	rep.Window = window
	rep.TotalCount = total
	return rep, nil
}
