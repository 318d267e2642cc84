package itemrepo

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

func (r *Repository) Create(ctx context.Context, description string, sellerID int) (*domain.Item, error) {
	query := `
		INSERT INTO items (description, seller_id)
		VALUES ($1, $2)
		RETURNING id, description, seller_id, status, current_price, owner_id, created_at
	`
	var item domain.Item
	err := r.db.QueryRow(ctx, query, description, sellerID).
		Scan(&item.ID, &item.Description, &item.SellerID, &item.Status, &item.CurrentPrice, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		zap.L().Error("can't save item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `
		SELECT id, description, seller_id, status, current_price, owner_id, created_at
		FROM items
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByIDForUpdate locks the item row for the remainder of the enclosing
// transaction. Concurrent bid placement and auction end serialize on it.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Item, error) {
	query := `
		SELECT id, description, seller_id, status, current_price, owner_id, created_at
		FROM items
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.ID, &item.Description, &item.SellerID, &item.Status, &item.CurrentPrice, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.ItemListing, error) {
	query := `
		SELECT i.id, i.description, i.seller_id, i.status, i.current_price, i.owner_id, i.created_at,
		       s.name AS seller_name, o.name AS owner_name
		FROM items i
		JOIN users s ON s.id = i.seller_id
		LEFT JOIN users o ON o.id = i.owner_id
		ORDER BY i.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var listings []domain.ItemListing
	for rows.Next() {
		var l domain.ItemListing
		err := rows.Scan(&l.ID, &l.Description, &l.SellerID, &l.Status, &l.CurrentPrice, &l.OwnerID, &l.CreatedAt,
			&l.SellerName, &l.OwnerName)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *Repository) FindListingByID(ctx context.Context, id int) (*domain.ItemListing, error) {
	query := `
		SELECT i.id, i.description, i.seller_id, i.status, i.current_price, i.owner_id, i.created_at,
		       s.name AS seller_name, o.name AS owner_name
		FROM items i
		JOIN users s ON s.id = i.seller_id
		LEFT JOIN users o ON o.id = i.owner_id
		WHERE i.id = $1
	`
	var l domain.ItemListing
	err := r.db.QueryRow(ctx, query, id).
		Scan(&l.ID, &l.Description, &l.SellerID, &l.Status, &l.CurrentPrice, &l.OwnerID, &l.CreatedAt,
			&l.SellerName, &l.OwnerName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find item listing", zap.Error(err))
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Update(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET status = $1, current_price = $2, owner_id = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, item.Status, item.CurrentPrice, item.OwnerID, item.ID)
	if err != nil {
		zap.L().Error("can't update item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if !pg.IsForeignKeyViolation(err) {
			zap.L().Error("can't delete item", zap.Error(err))
		}
		return 0, err
	}
	return tag.RowsAffected(), nil
}
