package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/keuanganbot/keuanganbot/internal/model"
)

// Finance is the store contract consumed by the services
type Finance interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	SumAmount(ctx context.Context, userID int64, kind string) (float64, error)
	FindCategory(ctx context.Context, name string) (*model.Category, error)
	ListTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64, limit int) ([]model.Transaction, error)
	CountTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64) (int, error)
}

// UnitOfWork groups store writes that must commit or roll back together
type UnitOfWork interface {
	FindOrCreateCategory(ctx context.Context, name, kind string) (*model.Category, error)
	CreateTransaction(ctx context.Context, trx *model.Transaction) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type FinancePostgres struct {
	conn *pgxpool.Pool
}

func NewFinancePostgres(conn *pgxpool.Pool) *FinancePostgres {
	return &FinancePostgres{
		conn: conn,
	}
}

func (f *FinancePostgres) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := f.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.Finance, begin error: %v", err)
	}
	return &unitOfWork{tx: tx}, nil
}

func (f *FinancePostgres) SumAmount(ctx context.Context, userID int64, kind string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id=$1 AND type=$2`
	var sum float64
	if err := f.conn.QueryRow(ctx, query, userID, kind).Scan(&sum); err != nil {
		return 0, fmt.Errorf("repository.Finance, sum amount error: %v", err)
	}
	return sum, nil
}

// FindCategory matches by case-insensitive substring across both types,
// the way the filter grammar expects. Returns nil without error when
// nothing matches so the caller can drop the filter.
func (f *FinancePostgres) FindCategory(ctx context.Context, name string) (*model.Category, error) {
	query := `SELECT id, name, type, COALESCE(description, '') FROM categories
		WHERE LOWER(name) LIKE '%' || LOWER($1) || '%' ORDER BY id LIMIT 1`
	var c model.Category
	err := f.conn.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.Type, &c.Description)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository.Finance, find category error: %v", err)
	}
	return &c, nil
}

func (f *FinancePostgres) ListTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64, limit int) ([]model.Transaction, error) {
	query := `SELECT t.id, t.user_id, t.category_id, c.name, t.type, t.amount, COALESCE(t.description, ''), t.transaction_date, t.created_at
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id=$1 AND t.transaction_date BETWEEN $2 AND $3`
	args := []interface{}{userID, window.Start, window.End}
	if categoryID > 0 {
		query += ` AND t.category_id=$4`
		args = append(args, categoryID)
	}
	query += ` ORDER BY t.transaction_date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := f.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.Finance, list transactions error: %v", err)
	}
	defer rows.Close()

	var trxs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err = rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Category, &t.Type, &t.Amount, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository.Finance, scan transaction error: %v", err)
		}
		trxs = append(trxs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.Finance, rows error: %v", err)
	}
	return trxs, nil
}

func (f *FinancePostgres) CountTransactions(ctx context.Context, userID int64, window model.Window, categoryID int64) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id=$1 AND transaction_date BETWEEN $2 AND $3`
	args := []interface{}{userID, window.Start, window.End}
	if categoryID > 0 {
		query += ` AND category_id=$4`
		args = append(args, categoryID)
	}
	var count int
	if err := f.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository.Finance, count transactions error: %v", err)
	}
	return count, nil
}

type unitOfWork struct {
	tx pgx.Tx
}

// FindOrCreateCategory resolves a category by exact case-insensitive
// name for the given kind, creating it inside the transaction when
// absent, so a later rollback never leaves an orphan category.
func (u *unitOfWork) FindOrCreateCategory(ctx context.Context, name, kind string) (*model.Category, error) {
	query := `SELECT id, name, type, COALESCE(description, '') FROM categories WHERE LOWER(name)=LOWER($1) AND type=$2`
	var c model.Category
	err := u.tx.QueryRow(ctx, query, name, kind).Scan(&c.ID, &c.Name, &c.Type, &c.Description)
	if err == nil {
		return &c, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("repository.UnitOfWork, find category error: %v", err)
	}

	description := "Kategori pengeluaran otomatis"
	if kind == model.Income {
		description = "Kategori pemasukan otomatis"
	}
	insert := `INSERT INTO categories (name, type, description) VALUES ($1, $2, $3) RETURNING id`
	c = model.Category{Name: name, Type: kind, Description: description}
	if err = u.tx.QueryRow(ctx, insert, name, kind, description).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("repository.UnitOfWork, create category error: %v", err)
	}
	return &c, nil
}

func (u *unitOfWork) CreateTransaction(ctx context.Context, trx *model.Transaction) error {
	query := `INSERT INTO transactions (user_id, category_id, type, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6) RETURNING id, created_at`
	err := u.tx.QueryRow(ctx, query, trx.UserID, trx.CategoryID, trx.Type, trx.Amount, trx.Description, trx.Date).
		Scan(&trx.ID, &trx.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository.UnitOfWork, create transaction error: %v", err)
	}
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	return u.tx.Rollback(ctx)
}
