package auctionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
	"github.com/krotovic/auctionhouse/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockItemRepo, *MockBidRepo, *MockUserRepo, *MockConfigRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	itemRepo := NewMockItemRepo(ctrl)
	bidRepo := NewMockBidRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	configRepo := NewMockConfigRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(itemRepo, bidRepo, userRepo, configRepo, ledger, txManager)
	defer ctrl.Finish()
	return service, itemRepo, bidRepo, userRepo, configRepo, ledger, txManager
}

func passthroughBegin(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestStartAuction(t *testing.T) {
	service, itemRepo, _, _, configRepo, _, txManager := NewMock(t)
	currentItemID := 2
	startingPrice := 80

	tests := []struct {
		name          string
		itemID        int
		startingPrice *int
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Starts the auction and seeds the price",
			itemID:        1,
			startingPrice: &startingPrice,
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeDutch}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusAvailable}, nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.Item) error {
						assert.Equal(t, domain.ItemStatusActiveAuction, item.Status)
						assert.Equal(t, &startingPrice, item.CurrentPrice)
						return nil
					})
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.NotNil(t, cfg.CurrentAuctionItemID)
						assert.Equal(t, 1, *cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedError: nil,
		},
		{
			name:   "Another auction already running",
			itemID: 1,
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{CurrentAuctionItemID: &currentItemID}, nil)
			},
			expectedError: ErrAuctionInProgress,
		},
		{
			name:   "Item not found",
			itemID: 99,
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name:   "Item not available",
			itemID: 1,
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, Status: domain.ItemStatusSold}, nil)
			},
			expectedError: ErrInvalidItemState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			item, err := service.StartAuction(context.Background(), tt.itemID, tt.startingPrice)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ItemStatusActiveAuction, item.Status)
			}
		})
	}
}

func TestPlaceBid(t *testing.T) {
	service, itemRepo, bidRepo, userRepo, configRepo, ledger, txManager := NewMock(t)

	activeItem := func() *domain.Item {
		return &domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusActiveAuction}
	}

	tests := []struct {
		name           string
		itemID         int
		userID         int
		amount         int
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:          "Non-positive amount rejected before any query",
			itemID:        1,
			userID:        2,
			amount:        0,
			expectedError: ErrInvalidBidAmount,
		},
		{
			name:   "Item not under auction",
			itemID: 1,
			userID: 2,
			amount: 50,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusAvailable}, nil)
			},
			expectedError: ErrInvalidItemState,
		},
		{
			name:   "Seller cannot bid on own item",
			itemID: 1,
			userID: 1,
			amount: 50,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeItem(), nil)
			},
			expectedError: ErrSellerBid,
		},
		{
			name:   "Unknown bidder",
			itemID: 1,
			userID: 99,
			amount: 50,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeItem(), nil)
				userRepo.EXPECT().Exists(gomock.Any(), 99).Return(false, nil)
			},
			expectedError: ErrBidderNotFound,
		},
		{
			name:   "English bid below the leader rejected",
			itemID: 1,
			userID: 2,
			amount: 30,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeItem(), nil)
				userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish}, nil)
				bidRepo.EXPECT().FindHighestActive(gomock.Any(), 1).
					Return(&domain.Bid{ID: 1, ItemID: 1, UserID: 3, BidAmount: 40, Status: domain.BidStatusActive}, nil)
			},
			expectedError: ErrBidTooLow,
		},
		{
			name:   "English bid outbids the previous leader",
			itemID: 1,
			userID: 2,
			amount: 50,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(activeItem(), nil)
				userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish}, nil)
				bidRepo.EXPECT().FindHighestActive(gomock.Any(), 1).
					Return(&domain.Bid{ID: 1, ItemID: 1, UserID: 3, BidAmount: 40, Status: domain.BidStatusActive}, nil)
				bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
						assert.Equal(t, domain.BidStatusActive, bid.Status)
						bid.ID = 2
						return bid, nil
					})
				bidRepo.EXPECT().SetStatus(gomock.Any(), 1, domain.BidStatusOutbid).Return(nil)
			},
			expectedStatus: domain.BidStatusActive,
			expectedError:  nil,
		},
		{
			name:   "Dutch bid at the asking price settles immediately",
			itemID: 1,
			userID: 2,
			amount: 80,
			prepareMock: func() {
				asking := 80
				item := activeItem()
				item.CurrentPrice = &asking

				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(item, nil)
				userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeDutch, CurrentAuctionItemID: &item.ID}, nil)
				bidRepo.EXPECT().FindHighestActive(gomock.Any(), 1).Return(nil, nil)
				bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
						bid.ID = 5
						return bid, nil
					})
				ledger.EXPECT().RecordTransaction(gomock.Any(), 2, -80, "Won auction for item #1", gomock.Any(), gomock.Any()).
					Return(&domain.Transaction{}, nil)
				ledger.EXPECT().RecordTransaction(gomock.Any(), 1, 80, "Sold item #1", gomock.Any(), gomock.Any()).
					Return(&domain.Transaction{}, nil)
				bidRepo.EXPECT().SetStatus(gomock.Any(), 5, domain.BidStatusWon).Return(nil)
				bidRepo.EXPECT().ResolveItemBidsExcept(gomock.Any(), 1, 5, domain.BidStatusLost).Return(int64(0), nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.Item) error {
						assert.Equal(t, domain.ItemStatusSold, item.Status)
						assert.Equal(t, 2, *item.OwnerID)
						assert.Equal(t, 80, *item.CurrentPrice)
						return nil
					})
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.Nil(t, cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedStatus: domain.BidStatusWon,
			expectedError:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			bid, err := service.PlaceBid(context.Background(), tt.itemID, tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, bid)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, bid)
				assert.Equal(t, tt.amount, bid.BidAmount)
				assert.Equal(t, tt.expectedStatus, bid.Status)
			}
		})
	}
}

func TestEndAuction(t *testing.T) {
	service, itemRepo, bidRepo, _, configRepo, ledger, txManager := NewMock(t)
	currentItemID := 1
	now := time.Now()

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name: "No auction running",
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{}, nil)
			},
			expectedError: ErrAuctionNotRunning,
		},
		{
			name: "Item sells to the highest bid",
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, CurrentAuctionItemID: &currentItemID}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusActiveAuction}, nil)
				bidRepo.EXPECT().FindResolvableByItemID(gomock.Any(), 1).Return([]domain.Bid{
					{ID: 2, ItemID: 1, UserID: 3, BidAmount: 60, Timestamp: now, Status: domain.BidStatusActive},
					{ID: 1, ItemID: 1, UserID: 2, BidAmount: 40, Timestamp: now, Status: domain.BidStatusOutbid},
				}, nil)
				ledger.EXPECT().RecordTransaction(gomock.Any(), 3, -60, "Won auction for item #1", gomock.Any(), gomock.Any()).
					Return(&domain.Transaction{}, nil)
				ledger.EXPECT().RecordTransaction(gomock.Any(), 1, 60, "Sold item #1", gomock.Any(), gomock.Any()).
					Return(&domain.Transaction{}, nil)
				bidRepo.EXPECT().SetStatus(gomock.Any(), 2, domain.BidStatusWon).Return(nil)
				bidRepo.EXPECT().ResolveItemBidsExcept(gomock.Any(), 1, 2, domain.BidStatusLost).Return(int64(1), nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.Item) error {
						assert.Equal(t, domain.ItemStatusSold, item.Status)
						assert.Equal(t, 3, *item.OwnerID)
						assert.Equal(t, 60, *item.CurrentPrice)
						return nil
					})
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.Nil(t, cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedStatus: domain.ItemStatusSold,
			expectedError:  nil,
		},
		{
			name: "Item passes without bids",
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, CurrentAuctionItemID: &currentItemID}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusActiveAuction}, nil)
				bidRepo.EXPECT().FindResolvableByItemID(gomock.Any(), 1).Return(nil, nil)
				bidRepo.EXPECT().ResolveItemBids(gomock.Any(), 1, domain.BidStatusLost).Return(int64(0), nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.Item) error {
						assert.Equal(t, domain.ItemStatusPassed, item.Status)
						assert.Nil(t, item.OwnerID)
						return nil
					})
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.Nil(t, cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedStatus: domain.ItemStatusPassed,
			expectedError:  nil,
		},
		{
			name: "Insufficient winner funds abort the settlement",
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, CurrentAuctionItemID: &currentItemID}, nil)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, SellerID: 1, Status: domain.ItemStatusActiveAuction}, nil)
				bidRepo.EXPECT().FindResolvableByItemID(gomock.Any(), 1).Return([]domain.Bid{
					{ID: 2, ItemID: 1, UserID: 3, BidAmount: 500, Timestamp: now, Status: domain.BidStatusActive},
				}, nil)
				ledger.EXPECT().RecordTransaction(gomock.Any(), 3, -500, "Won auction for item #1", gomock.Any(), gomock.Any()).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedError: ledgerservice.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			item, err := service.EndAuction(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, item.Status)
			}
		})
	}
}

func TestCancelItem(t *testing.T) {
	service, itemRepo, bidRepo, _, configRepo, _, txManager := NewMock(t)
	currentItemID := 1

	tests := []struct {
		name          string
		itemID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Cancelling the item under auction clears the pointer",
			itemID: 1,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Item{ID: 1, Status: domain.ItemStatusActiveAuction}, nil)
				bidRepo.EXPECT().ResolveItemBids(gomock.Any(), 1, domain.BidStatusCancelled).Return(int64(2), nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, item *domain.Item) error {
						assert.Equal(t, domain.ItemStatusCancelled, item.Status)
						return nil
					})
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{CurrentAuctionItemID: &currentItemID}, nil)
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.Nil(t, cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedError: nil,
		},
		{
			name:   "Cancelling an available item touches no config",
			itemID: 2,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 2).
					Return(&domain.Item{ID: 2, Status: domain.ItemStatusAvailable}, nil)
				bidRepo.EXPECT().ResolveItemBids(gomock.Any(), 2, domain.BidStatusCancelled).Return(int64(0), nil)
				itemRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "Item not found",
			itemID: 99,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name:   "Sold item cannot be cancelled",
			itemID: 3,
			prepareMock: func() {
				passthroughBegin(txManager)
				itemRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).
					Return(&domain.Item{ID: 3, Status: domain.ItemStatusSold}, nil)
			},
			expectedError: ErrInvalidItemState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			item, err := service.CancelItem(context.Background(), tt.itemID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ItemStatusCancelled, item.Status)
			}
		})
	}
}

func TestUpdateConfig(t *testing.T) {
	service, _, _, _, configRepo, _, txManager := NewMock(t)
	currentItemID := 1
	dutch := domain.AuctionTypeDutch
	unknown := "blind"
	disallow := false

	tests := []struct {
		name          string
		upd           ConfigUpdate
		prepareMock   func()
		expectedError error
		check         func(cfg *domain.AuctionConfig)
	}{
		{
			name: "Changes type and gate",
			upd:  ConfigUpdate{AuctionType: &dutch, AllowNewItems: &disallow},
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, AllowNewItems: true}, nil)
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
			check: func(cfg *domain.AuctionConfig) {
				assert.Equal(t, domain.AuctionTypeDutch, cfg.AuctionType)
				assert.False(t, cfg.AllowNewItems)
			},
		},
		{
			name: "Keeps the auction pointer read under lock",
			upd:  ConfigUpdate{AllowNewItems: &disallow},
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, AllowNewItems: true, CurrentAuctionItemID: &currentItemID}, nil)
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, cfg *domain.AuctionConfig) error {
						assert.Equal(t, &currentItemID, cfg.CurrentAuctionItemID)
						return nil
					})
			},
			expectedError: nil,
			check: func(cfg *domain.AuctionConfig) {
				assert.False(t, cfg.AllowNewItems)
				assert.Equal(t, &currentItemID, cfg.CurrentAuctionItemID)
			},
		},
		{
			name: "Unknown auction type rejected",
			upd:  ConfigUpdate{AuctionType: &unknown},
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish}, nil)
			},
			expectedError: ErrInvalidAuctionType,
		},
		{
			name: "Type locked while an auction runs",
			upd:  ConfigUpdate{AuctionType: &dutch},
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).
					Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, CurrentAuctionItemID: &currentItemID}, nil)
			},
			expectedError: ErrAuctionInProgress,
		},
		{
			name: "Error persisting the update",
			upd:  ConfigUpdate{AllowNewItems: &disallow},
			prepareMock: func() {
				passthroughBegin(txManager)
				configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish}, nil)
				configRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			cfg, err := service.UpdateConfig(context.Background(), tt.upd)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(cfg)
				}
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	service, _, _, _, configRepo, _, _ := NewMock(t)

	configRepo.EXPECT().Get(gomock.Any()).Return(&domain.AuctionConfig{AuctionType: domain.AuctionTypeEnglish, AllowNewItems: true}, nil)

	cfg, err := service.GetConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.AuctionTypeEnglish, cfg.AuctionType)
}
