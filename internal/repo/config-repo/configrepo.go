package configrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

// configID is the primary key of the singleton auctionconfig row.
const configID = 1

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.AuctionConfig, error) {
	query := `
		SELECT id, auction_type, allow_new_items, current_auction_item_id, previewed_item_id, updated_at
		FROM auctionconfig
		WHERE id = $1
	`
	return r.get(ctx, query)
}

// GetForUpdate locks the config row for the duration of the surrounding
// transaction. Every writer must read through here so that concurrent
// transactions serialize on the row instead of overwriting each other.
func (r *Repository) GetForUpdate(ctx context.Context) (*domain.AuctionConfig, error) {
	query := `
		SELECT id, auction_type, allow_new_items, current_auction_item_id, previewed_item_id, updated_at
		FROM auctionconfig
		WHERE id = $1
		FOR UPDATE
	`
	return r.get(ctx, query)
}

func (r *Repository) get(ctx context.Context, query string) (*domain.AuctionConfig, error) {
	var cfg domain.AuctionConfig
	err := r.db.QueryRow(ctx, query, configID).
		Scan(&cfg.ID, &cfg.AuctionType, &cfg.AllowNewItems, &cfg.CurrentAuctionItemID, &cfg.PreviewedItemID, &cfg.UpdatedAt)
	if err != nil {
		zap.L().Error("can't get auction config", zap.Error(err))
		return nil, err
	}
	return &cfg, nil
}

func (r *Repository) Update(ctx context.Context, cfg *domain.AuctionConfig) error {
	query := `
		UPDATE auctionconfig
		SET auction_type = $1, allow_new_items = $2, current_auction_item_id = $3, previewed_item_id = $4, updated_at = now()
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query,
		cfg.AuctionType, cfg.AllowNewItems, cfg.CurrentAuctionItemID, cfg.PreviewedItemID, configID)
	if err != nil {
		zap.L().Error("can't update auction config", zap.Error(err))
		return err
	}
	return nil
}
