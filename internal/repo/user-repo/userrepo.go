package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, name string) (*domain.User, error) {
	query := `
		INSERT INTO users (name, balance)
		VALUES ($1, 0)
		RETURNING id, name, balance, created_at
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, name).Scan(&user.ID, &user.Name, &user.Balance, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, name, balance, created_at
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Balance, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// ApplyBalanceChange atomically adjusts the user balance. The guard in the
// WHERE clause keeps the balance non-negative: ok is false when the debit
// would overdraw the account (or the user does not exist).
func (r *Repository) ApplyBalanceChange(ctx context.Context, userID int, amount int) (int, bool, error) {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING balance
	`
	var newBalance int
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		zap.L().Error("can't apply balance change", zap.Error(err))
		return 0, false, err
	}
	return newBalance, true, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if !pg.IsForeignKeyViolation(err) {
			zap.L().Error("can't delete user", zap.Error(err))
		}
		return 0, err
	}
	return tag.RowsAffected(), nil
}
