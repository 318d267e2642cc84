package itemservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

type ItemRepo interface {
	Create(ctx context.Context, description string, sellerID int) (*domain.Item, error)
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	FindListingByID(ctx context.Context, id int) (*domain.ItemListing, error)
	List(ctx context.Context) ([]domain.ItemListing, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type BidRepo interface {
	FindListingsByItemID(ctx context.Context, itemID int) ([]domain.BidListing, error)
}

type UserRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type ConfigRepo interface {
	Get(ctx context.Context) (*domain.AuctionConfig, error)
}

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrNewItemsNotAllowed = errors.New("adding new items is currently disallowed by auction configuration")
	ErrSellerNotFound     = errors.New("seller not found")
	ErrItemInAuction      = errors.New("item is currently active in an auction")
	ErrItemSold           = errors.New("item has been sold")
	ErrItemReferenced     = errors.New("item is still referenced by bids or auction configuration")
)

// ItemDetails is the full read model of an item: the listing plus its bids.
type ItemDetails struct {
	domain.ItemListing
	Bids []domain.BidListing
}

type Service struct {
	itemRepo   ItemRepo
	bidRepo    BidRepo
	userRepo   UserRepo
	configRepo ConfigRepo
}

func New(itemRepo ItemRepo, bidRepo BidRepo, userRepo UserRepo, configRepo ConfigRepo) *Service {
	return &Service{
		itemRepo:   itemRepo,
		bidRepo:    bidRepo,
		userRepo:   userRepo,
		configRepo: configRepo,
	}
}

// CreateItem inserts an item for sale. Creation is gated by the
// allow_new_items flag of the auction configuration.
func (s *Service) CreateItem(ctx context.Context, description string, sellerID int) (*domain.Item, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.AllowNewItems {
		zap.L().Info("item creation blocked by configuration", zap.Int("seller_id", sellerID))
		return nil, ErrNewItemsNotAllowed
	}

	exists, err := s.userRepo.Exists(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrSellerNotFound
	}

	item, err := s.itemRepo.Create(ctx, description, sellerID)
	if err != nil {
		zap.L().Error("can't create item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context) ([]domain.ItemListing, error) {
	listings, err := s.itemRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list items", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

// GetItem returns the item listing together with all of its bids. The two
// queries are independent reads and run concurrently.
func (s *Service) GetItem(ctx context.Context, id int) (*ItemDetails, error) {
	var (
		listing *domain.ItemListing
		bids    []domain.BidListing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listing, err = s.itemRepo.FindListingByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		bids, err = s.bidRepo.FindListingsByItemID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to get item", zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, ErrItemNotFound
	}
	return &ItemDetails{ItemListing: *listing, Bids: bids}, nil
}

// DeleteItem removes an item that never sold. Deletion is refused while the
// item is the current auction item, once it is sold or owned, and while
// other rows (bids, the previewed-item pointer) still reference it.
func (s *Service) DeleteItem(ctx context.Context, id int) error {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.CurrentAuctionItemID != nil && *cfg.CurrentAuctionItemID == id {
		return ErrItemInAuction
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if item.Status == domain.ItemStatusSold || item.OwnerID != nil {
		return ErrItemSold
	}

	rows, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrItemReferenced
		}
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}
