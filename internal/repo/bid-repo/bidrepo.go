package bidrepo

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

func (r *Repository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
		INSERT INTO bids (item_id, user_id, bid_amount, timestamp, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, bid.ItemID, bid.UserID, bid.BidAmount, bid.Timestamp, bid.Status).Scan(&bid.ID)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

// FindResolvableByItemID returns the item's bids that have not reached a
// terminal state yet, highest amount first (earliest bid wins ties).
func (r *Repository) FindResolvableByItemID(ctx context.Context, itemID int) ([]domain.Bid, error) {
	query := `
		SELECT id, item_id, user_id, bid_amount, timestamp, status
		FROM bids
		WHERE item_id = $1 AND status IN ('active', 'outbid', 'winning')
		ORDER BY bid_amount DESC, id ASC
	`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		zap.L().Error("can't get bids for item", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.ItemID, &bid.UserID, &bid.BidAmount, &bid.Timestamp, &bid.Status)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// FindHighestActive returns the current leading bid, or nil when the item
// has no active bids.
func (r *Repository) FindHighestActive(ctx context.Context, itemID int) (*domain.Bid, error) {
	query := `
		SELECT id, item_id, user_id, bid_amount, timestamp, status
		FROM bids
		WHERE item_id = $1 AND status = 'active'
		ORDER BY bid_amount DESC, id ASC
		LIMIT 1
	`
	var bid domain.Bid
	err := r.db.QueryRow(ctx, query, itemID).
		Scan(&bid.ID, &bid.ItemID, &bid.UserID, &bid.BidAmount, &bid.Timestamp, &bid.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find highest bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) FindListingsByItemID(ctx context.Context, itemID int) ([]domain.BidListing, error) {
	query := `
		SELECT b.id, b.item_id, b.user_id, b.bid_amount, b.timestamp, b.status, u.name AS user_name
		FROM bids b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.item_id = $1
		ORDER BY b.timestamp DESC
	`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		zap.L().Error("can't get bid listings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var listings []domain.BidListing
	for rows.Next() {
		var l domain.BidListing
		err := rows.Scan(&l.ID, &l.ItemID, &l.UserID, &l.BidAmount, &l.Timestamp, &l.Status, &l.UserName)
		if err != nil {
			zap.L().Error("can't scan bid listing row", zap.Error(err))
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *Repository) SetStatus(ctx context.Context, bidID int, status string) error {
	_, err := r.db.Exec(ctx, `UPDATE bids SET status = $1 WHERE id = $2`, status, bidID)
	if err != nil {
		zap.L().Error("can't update bid status", zap.Error(err))
		return err
	}
	return nil
}

// ResolveItemBids moves every non-terminal bid on the item to status.
func (r *Repository) ResolveItemBids(ctx context.Context, itemID int, status string) (int64, error) {
	query := `
		UPDATE bids
		SET status = $1
		WHERE item_id = $2 AND status IN ('active', 'outbid', 'winning')
	`
	tag, err := r.db.Exec(ctx, query, status, itemID)
	if err != nil {
		zap.L().Error("can't resolve item bids", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ResolveItemBidsExcept moves every non-terminal bid on the item to status,
// except the given one (the winner).
func (r *Repository) ResolveItemBidsExcept(ctx context.Context, itemID int, exceptBidID int, status string) (int64, error) {
	query := `
		UPDATE bids
		SET status = $1
		WHERE item_id = $2 AND id <> $3 AND status IN ('active', 'outbid', 'winning')
	`
	tag, err := r.db.Exec(ctx, query, status, itemID, exceptBidID)
	if err != nil {
		zap.L().Error("can't resolve item bids", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
