package service

import (
	"context"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/repository"
)

// fakeFinance records the arguments of the last store call so the
// tests can assert what the services asked for.
type fakeFinance struct {
	uow *fakeUnitOfWork

	sums       map[string]float64
	sumErr     error
	category   *model.Category
	trxs       []model.Transaction
	count      int
	listErr    error
	lastWindow model.Window
	lastCatID  int64
	lastLimit  int
}

func (f *fakeFinance) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	return f.uow, nil
}

func (f *fakeFinance) SumAmount(ctx context.Context, userID int64, kind string) (float64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	return f.sums[kind], nil
}

func (f *fakeFinance) FindCategory(ctx context.Context, name string) (*model.Category, error) {
	return f.category, nil
}

func (f *fakeFinance) ListTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64, limit int) ([]model.Transaction, error) {
	f.lastWindow = window
	f.lastCatID = categoryID
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.trxs, nil
}

func (f *fakeFinance) CountTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64) (int, error) {
	return f.count, nil
}

type fakeUnitOfWork struct {
	category     *model.Category
	categoryErr  error
	createErr    error
	commitCalls  int
	rollbackCall int
}

func (u *fakeUnitOfWork) FindOrCreateCategory(ctx context.Context, name, kind string) (*model.Category, error) {
	if u.categoryErr != nil {
		return nil, u.categoryErr
	}
	if u.category != nil {
		return u.category, nil
	}
	return &model.Category{ID: 1, Name: name, Type: kind}, nil
}

func (u *fakeUnitOfWork) CreateTransaction(ctx context.Context, trx *model.Transaction) error {
	if u.createErr != nil {
		return u.createErr
	}
	trx.ID = 42
	return nil
}

func (u *fakeUnitOfWork) Commit(ctx context.Context) error {
	u.commitCalls++
	return nil
}

func (u *fakeUnitOfWork) Rollback(ctx context.Context) error {
	u.rollbackCall++
	return nil
}
