package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/repository"
)

type Recorder interface {
	Add(ctx context.Context, userID int64, kind string, amount float64, category, description string) (*model.Transaction, error)
}

type recorder struct {
	repo repository.Finance
}

func NewRecorder(repo repository.Finance) *recorder {
	return &recorder{
		repo: repo,
	}
}

// Add records one transaction together with its implicit category
// creation in a single unit of work: both apply or neither does.
func (r *recorder) Add(ctx context.Context, userID int64, kind string, amount float64, category, description string) (*model.Transaction, error) {
	uow, err := r.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("recorder couldn't begin unit of work: %v", err)
	}

	c, err := uow.FindOrCreateCategory(ctx, category, kind)
	if err != nil {
		r.rollback(ctx, uow)
		return nil, fmt.Errorf("recorder couldn't resolve category: %v", err)
	}

	trx := &model.Transaction{
		UserID:      userID,
		CategoryID:  c.ID,
		Category:    c.Name,
		Type:        kind,
		Amount:      amount,
		Description: description,
		Date:        time.Now(),
	}
	if err = uow.CreateTransaction(ctx, trx); err != nil {
		r.rollback(ctx, uow)
		return nil, fmt.Errorf("recorder couldn't create transaction: %v", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("recorder couldn't commit: %v", err)
	}
	return trx, nil
}

func (r *recorder) rollback(ctx context.Context, uow repository.UnitOfWork) {
	if err := uow.Rollback(ctx); err != nil {
		logrus.Errorf("recorder couldn't rollback: %v", err)
	}
}
