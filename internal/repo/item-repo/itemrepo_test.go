package itemrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/krotovic/auctionhouse/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func itemColumns() []string {
	return []string{"id", "description", "seller_id", "status", "current_price", "owner_id", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		description string
		sellerID    int
		mockSetup   func()
		expectErr   bool
		result      *domain.Item
	}{
		{
			name:        "Successfully creates item",
			description: "Antique clock",
			sellerID:    1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO items (description, seller_id)
			VALUES ($1, $2)
			RETURNING id, description, seller_id, status, current_price, owner_id, created_at`)).
					WithArgs("Antique clock", 1).
					WillReturnRows(pgxmock.NewRows(itemColumns()).
						AddRow(1, "Antique clock", 1, "available", nil, nil, now))
			},
			expectErr: false,
			result: &domain.Item{
				ID:          1,
				Description: "Antique clock",
				SellerID:    1,
				Status:      domain.ItemStatusAvailable,
				CreatedAt:   now,
			},
		},
		{
			name:        "Database error",
			description: "Antique clock",
			sellerID:    1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO items (description, seller_id)
			VALUES ($1, $2)
			RETURNING id, description, seller_id, status, current_price, owner_id, created_at`)).
					WithArgs("Antique clock", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.description, tt.sellerID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	price := 75

	tests := []struct {
		name      string
		itemID    int
		mockSetup func()
		expectErr bool
		result    *domain.Item
	}{
		{
			name:   "Valid itemID returns item",
			itemID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, description, seller_id, status, current_price, owner_id, created_at
			FROM items
			WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(itemColumns()).
						AddRow(1, "Antique clock", 1, "active_auction", &price, nil, now))
			},
			expectErr: false,
			result: &domain.Item{
				ID:           1,
				Description:  "Antique clock",
				SellerID:     1,
				Status:       domain.ItemStatusActiveAuction,
				CurrentPrice: &price,
				CreatedAt:    now,
			},
		},
		{
			name:   "Non-existing itemID returns nil",
			itemID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, description, seller_id, status, current_price, owner_id, created_at
			FROM items
			WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			itemID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, description, seller_id, status, current_price, owner_id, created_at
			FROM items
			WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByID(context.Background(), tt.itemID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		itemID    int
		mockSetup func()
		expectErr bool
		result    *domain.Item
	}{
		{
			name:   "Locks and returns the item",
			itemID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, description, seller_id, status, current_price, owner_id, created_at
			FROM items
			WHERE id = $1
			FOR UPDATE`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(itemColumns()).
						AddRow(1, "Antique clock", 1, "available", nil, nil, now))
			},
			expectErr: false,
			result: &domain.Item{
				ID:          1,
				Description: "Antique clock",
				SellerID:    1,
				Status:      domain.ItemStatusAvailable,
				CreatedAt:   now,
			},
		},
		{
			name:   "Non-existing itemID returns nil",
			itemID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, description, seller_id, status, current_price, owner_id, created_at
			FROM items
			WHERE id = $1
			FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.FindByIDForUpdate(context.Background(), tt.itemID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	ownerName := "Bob"
	ownerID := 2
	price := 50

	listColumns := []string{"id", "description", "seller_id", "status", "current_price", "owner_id", "created_at", "seller_name", "owner_name"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.ItemListing
	}{
		{
			name: "Returns listings with names",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT i.id, i.description, i.seller_id, i.status, i.current_price, i.owner_id, i.created_at,
			       s.name AS seller_name, o.name AS owner_name
			FROM items i
			JOIN users s ON s.id = i.seller_id
			LEFT JOIN users o ON o.id = i.owner_id
			ORDER BY i.id`)).
					WillReturnRows(pgxmock.NewRows(listColumns).
						AddRow(1, "Antique clock", 1, "sold", &price, &ownerID, now, "Alice", &ownerName).
						AddRow(2, "Vase", 1, "available", nil, nil, now, "Alice", nil))
			},
			expectErr: false,
			result: []domain.ItemListing{
				{
					Item: domain.Item{
						ID: 1, Description: "Antique clock", SellerID: 1,
						Status: domain.ItemStatusSold, CurrentPrice: &price, OwnerID: &ownerID, CreatedAt: now,
					},
					SellerName: "Alice",
					OwnerName:  &ownerName,
				},
				{
					Item: domain.Item{
						ID: 2, Description: "Vase", SellerID: 1,
						Status: domain.ItemStatusAvailable, CreatedAt: now,
					},
					SellerName: "Alice",
				},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT i.id, i.description, i.seller_id, i.status, i.current_price, i.owner_id, i.created_at,
			       s.name AS seller_name, o.name AS owner_name
			FROM items i
			JOIN users s ON s.id = i.seller_id
			LEFT JOIN users o ON o.id = i.owner_id
			ORDER BY i.id`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.List(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	price := 80
	ownerID := 2

	tests := []struct {
		name      string
		item      *domain.Item
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates item",
			item: &domain.Item{ID: 1, Status: domain.ItemStatusSold, CurrentPrice: &price, OwnerID: &ownerID},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE items
			SET status = $1, current_price = $2, owner_id = $3
			WHERE id = $4`)).
					WithArgs("sold", &price, &ownerID, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			item: &domain.Item{ID: 1, Status: domain.ItemStatusPassed},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE items
			SET status = $1, current_price = $2, owner_id = $3
			WHERE id = $4`)).
					WithArgs("passed", (*int)(nil), (*int)(nil), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Update(context.Background(), tt.item)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name         string
		itemID       int
		mockSetup    func()
		expectErr    bool
		expectedRows int64
	}{
		{
			name:   "Successfully deletes item",
			itemID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr:    false,
			expectedRows: 1,
		},
		{
			name:   "Foreign key violation",
			itemID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectErr:    true,
			expectedRows: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rows, err := repo.Delete(context.Background(), tt.itemID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedRows, rows)
		})
	}
}
