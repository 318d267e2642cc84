package transactionrepo

import (
	"context"

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

// Create appends a ledger entry. Entries are never updated or deleted;
// corrections are new entries.
func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, description, amount_change, new_balance, timestamp, related_item_id, related_bid_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		txn.UserID, txn.Description, txn.AmountChange, txn.NewBalance, txn.Timestamp, txn.RelatedItemID, txn.RelatedBidID).
		Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, description, amount_change, new_balance, timestamp, related_item_id, related_bid_id
		FROM transactions
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Description, &txn.AmountChange, &txn.NewBalance,
			&txn.Timestamp, &txn.RelatedItemID, &txn.RelatedBidID)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
