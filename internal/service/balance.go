package service

import (
	"context"
	"fmt"

	"github.com/keuanganbot/keuanganbot/internal/model"
	"github.com/keuanganbot/keuanganbot/internal/repository"
)

type Balancer interface {
	Current(ctx context.Context, user *model.User) (*model.Balance, error)
}

type balancer struct {
	repo repository.Finance
}

func NewBalancer(repo repository.Finance) *balancer {
	return &balancer{
		repo: repo,
	}
}

// Current is initial balance plus all-time income minus all-time
// expense, with no date window
func (b *balancer) Current(ctx context.Context, user *model.User) (*model.Balance, error) {
	income, err := b.repo.SumAmount(ctx, user.ID, model.Income)
	if err != nil {
		return nil, fmt.Errorf("balancer couldn't sum income: %v", err)
	}
	expense, err := b.repo.SumAmount(ctx, user.ID, model.Expense)
	if err != nil {
		return nil, fmt.Errorf("balancer couldn't sum expense: %v", err)
	}
	return &model.Balance{
		InitialBalance: user.InitialBalance,
		Income:         income,
		Expense:        expense,
		Current:        user.InitialBalance + income - expense,
	}, nil
}
