package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

var (
	ErrNotRegistered = errors.New("user with this phone number is not registered")
	DuplicateUserErr = errors.New("user with this phone number already exists")
)

type Users interface {
	Create(ctx context.Context, user *model.User) error
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
}

type UsersPostgres struct {
	conn *pgxpool.Pool
}

func NewUsersPostgres(conn *pgxpool.Pool) *UsersPostgres {
	return &UsersPostgres{
		conn: conn,
	}
}

func (u *UsersPostgres) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, phone_number, initial_balance) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING RETURNING id`
	err := u.conn.QueryRow(ctx, query, user.Name, user.PhoneNumber, user.InitialBalance).Scan(&user.ID)
	if err == pgx.ErrNoRows {
		return DuplicateUserErr
	}
	if err != nil {
		return fmt.Errorf("repository.Users, create user error: %v", err)
	}
	return nil
}

func (u *UsersPostgres) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := `SELECT id, name, phone_number, initial_balance FROM users WHERE phone_number=$1`
	var user model.User
	err := u.conn.QueryRow(ctx, query, phone).Scan(&user.ID, &user.Name, &user.PhoneNumber, &user.InitialBalance)
	if err == pgx.ErrNoRows {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("repository.Users, get user error: %v", err)
	}
	return &user, nil
}
