package auctionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

type ItemRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
}

type BidRepo interface {
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	FindHighestActive(ctx context.Context, itemID int) (*domain.Bid, error)
	FindResolvableByItemID(ctx context.Context, itemID int) ([]domain.Bid, error)
	SetStatus(ctx context.Context, bidID int, status string) error
	ResolveItemBids(ctx context.Context, itemID int, status string) (int64, error)
	ResolveItemBidsExcept(ctx context.Context, itemID int, exceptBidID int, status string) (int64, error)
}

type UserRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type ConfigRepo interface {
	Get(ctx context.Context) (*domain.AuctionConfig, error)
	GetForUpdate(ctx context.Context) (*domain.AuctionConfig, error)
	Update(ctx context.Context, cfg *domain.AuctionConfig) error
}

type Ledger interface {
	RecordTransaction(ctx context.Context, userID int, amount int, description string, relatedItemID, relatedBidID *int) (*domain.Transaction, error)
}

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrAuctionInProgress  = errors.New("another auction is already in progress")
	ErrAuctionNotRunning  = errors.New("no auction is currently running")
	ErrInvalidItemState   = errors.New("item state does not permit this operation")
	ErrInvalidBidAmount   = errors.New("bid amount must be positive")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrSellerBid          = errors.New("seller cannot bid on own item")
	ErrBidderNotFound     = errors.New("bidder not found")
	ErrInvalidAuctionType = errors.New("unknown auction type")
)

// Service is the marketplace engine: it owns every item/bid state transition
// and is the only writer of item status, the auction pointer, and (through
// the ledger) user balances.
type Service struct {
	itemRepo   ItemRepo
	bidRepo    BidRepo
	userRepo   UserRepo
	configRepo ConfigRepo
	ledger     Ledger
	txManager  pg.TXManager
}

func New(itemRepo ItemRepo, bidRepo BidRepo, userRepo UserRepo, configRepo ConfigRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		itemRepo:   itemRepo,
		bidRepo:    bidRepo,
		userRepo:   userRepo,
		configRepo: configRepo,
		ledger:     ledger,
		txManager:  txManager,
	}
}

// StartAuction moves an available item into active_auction. Only one item
// may be under auction system-wide: the config row's current_auction_item_id
// is the mutual-exclusion token, so the row is read locked — two concurrent
// starts serialize there, and the loser sees the winner's pointer.
// startingPrice seeds the descending clock for dutch auctions and is
// optional elsewhere.
func (s *Service) StartAuction(ctx context.Context, itemID int, startingPrice *int) (*domain.Item, error) {
	var started *domain.Item
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if cfg.CurrentAuctionItemID != nil {
			return ErrAuctionInProgress
		}

		item, err := s.itemRepo.FindByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Status != domain.ItemStatusAvailable {
			return ErrInvalidItemState
		}

		item.Status = domain.ItemStatusActiveAuction
		if startingPrice != nil {
			item.CurrentPrice = startingPrice
		}
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return err
		}

		cfg.CurrentAuctionItemID = &item.ID
		if err := s.configRepo.Update(ctx, cfg); err != nil {
			return err
		}
		started = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("auction started", zap.Int("item_id", started.ID))
	return started, nil
}

// PlaceBid records a bid against the item under auction. Acceptance depends
// on the configured auction type; money never moves here. For dutch auctions
// a qualifying bid settles the auction immediately.
func (s *Service) PlaceBid(ctx context.Context, itemID, userID, amount int) (*domain.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidBidAmount
	}

	var placed *domain.Bid
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.FindByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Status != domain.ItemStatusActiveAuction {
			return ErrInvalidItemState
		}
		if item.SellerID == userID {
			return ErrSellerBid
		}

		exists, err := s.userRepo.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBidderNotFound
		}

		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		strategy, err := strategyFor(cfg.AuctionType)
		if err != nil {
			return err
		}

		highest, err := s.bidRepo.FindHighestActive(ctx, itemID)
		if err != nil {
			return err
		}
		if err := strategy.ValidateBid(item, highest, amount); err != nil {
			return err
		}

		bid, err := s.bidRepo.Create(ctx, &domain.Bid{
			ItemID:    itemID,
			UserID:    userID,
			BidAmount: amount,
			Timestamp: time.Now(),
			Status:    domain.BidStatusActive,
		})
		if err != nil {
			return err
		}

		if strategy.Outbids() && highest != nil {
			if err := s.bidRepo.SetStatus(ctx, highest.ID, domain.BidStatusOutbid); err != nil {
				return err
			}
		}

		if strategy.WinsImmediately(item, amount) {
			if err := s.settle(ctx, cfg, item, bid, amount); err != nil {
				return err
			}
		}
		placed = bid
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("bid placed",
		zap.Int("item_id", itemID), zap.Int("user_id", userID), zap.Int("amount", amount))
	return placed, nil
}

// EndAuction resolves the current auction exactly once. With a qualifying
// bid the item sells to the winner; otherwise it passes. Either way the
// auction pointer is cleared and no non-terminal bid survives.
func (s *Service) EndAuction(ctx context.Context) (*domain.Item, error) {
	var ended *domain.Item
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if cfg.CurrentAuctionItemID == nil {
			return ErrAuctionNotRunning
		}

		item, err := s.itemRepo.FindByIDForUpdate(ctx, *cfg.CurrentAuctionItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Status != domain.ItemStatusActiveAuction {
			return ErrInvalidItemState
		}

		strategy, err := strategyFor(cfg.AuctionType)
		if err != nil {
			return err
		}
		bids, err := s.bidRepo.FindResolvableByItemID(ctx, item.ID)
		if err != nil {
			return err
		}

		winner := strategy.PickWinner(bids)
		if winner == nil {
			if _, err := s.bidRepo.ResolveItemBids(ctx, item.ID, domain.BidStatusLost); err != nil {
				return err
			}
			item.Status = domain.ItemStatusPassed
			if err := s.itemRepo.Update(ctx, item); err != nil {
				return err
			}
			cfg.CurrentAuctionItemID = nil
			if err := s.configRepo.Update(ctx, cfg); err != nil {
				return err
			}
			ended = item
			return nil
		}

		price := strategy.SettlePrice(bids, winner)
		if err := s.settle(ctx, cfg, item, winner, price); err != nil {
			return err
		}
		ended = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("auction ended", zap.Int("item_id", ended.ID), zap.String("status", ended.Status))
	return ended, nil
}

// settle transfers the item to the winner at price: winner debited, seller
// credited, winning bid won, every other bid lost, auction pointer cleared.
// Runs inside the caller's transaction; an insufficient winner balance rolls
// the whole transition back.
func (s *Service) settle(ctx context.Context, cfg *domain.AuctionConfig, item *domain.Item, winner *domain.Bid, price int) error {
	_, err := s.ledger.RecordTransaction(ctx, winner.UserID, -price,
		fmt.Sprintf("Won auction for item #%d", item.ID), &item.ID, &winner.ID)
	if err != nil {
		return err
	}
	_, err = s.ledger.RecordTransaction(ctx, item.SellerID, price,
		fmt.Sprintf("Sold item #%d", item.ID), &item.ID, &winner.ID)
	if err != nil {
		return err
	}

	if err := s.bidRepo.SetStatus(ctx, winner.ID, domain.BidStatusWon); err != nil {
		return err
	}
	winner.Status = domain.BidStatusWon
	if _, err := s.bidRepo.ResolveItemBidsExcept(ctx, item.ID, winner.ID, domain.BidStatusLost); err != nil {
		return err
	}

	item.Status = domain.ItemStatusSold
	item.OwnerID = &winner.UserID
	item.CurrentPrice = &price
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}

	cfg.CurrentAuctionItemID = nil
	return s.configRepo.Update(ctx, cfg)
}

// CancelItem administratively withdraws an item from sale. Every bid on it
// is cancelled; balances are untouched.
func (s *Service) CancelItem(ctx context.Context, itemID int) (*domain.Item, error) {
	var cancelled *domain.Item
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.FindByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Status != domain.ItemStatusAvailable && item.Status != domain.ItemStatusActiveAuction {
			return ErrInvalidItemState
		}

		if _, err := s.bidRepo.ResolveItemBids(ctx, itemID, domain.BidStatusCancelled); err != nil {
			return err
		}

		wasActive := item.Status == domain.ItemStatusActiveAuction
		item.Status = domain.ItemStatusCancelled
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return err
		}

		if wasActive {
			cfg, err := s.configRepo.GetForUpdate(ctx)
			if err != nil {
				return err
			}
			if cfg.CurrentAuctionItemID != nil && *cfg.CurrentAuctionItemID == itemID {
				cfg.CurrentAuctionItemID = nil
				if err := s.configRepo.Update(ctx, cfg); err != nil {
					return err
				}
			}
		}
		cancelled = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("item cancelled", zap.Int("item_id", itemID))
	return cancelled, nil
}

func (s *Service) GetConfig(ctx context.Context) (*domain.AuctionConfig, error) {
	return s.configRepo.Get(ctx)
}

// ConfigUpdate carries a partial configuration change; nil fields stay
// untouched.
type ConfigUpdate struct {
	AuctionType     *string
	AllowNewItems   *bool
	PreviewedItemID *int
}

// UpdateConfig applies a partial update to the singleton configuration.
// The auction type may not change while an auction is running. The row is
// read locked so the whole-row write cannot clobber a concurrently-set
// auction pointer.
func (s *Service) UpdateConfig(ctx context.Context, upd ConfigUpdate) (*domain.AuctionConfig, error) {
	var updated *domain.AuctionConfig
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if upd.AuctionType != nil {
			if !domain.IsValidAuctionType(*upd.AuctionType) {
				return ErrInvalidAuctionType
			}
			if cfg.CurrentAuctionItemID != nil && *upd.AuctionType != cfg.AuctionType {
				return ErrAuctionInProgress
			}
			cfg.AuctionType = *upd.AuctionType
		}
		if upd.AllowNewItems != nil {
			cfg.AllowNewItems = *upd.AllowNewItems
		}
		if upd.PreviewedItemID != nil {
			cfg.PreviewedItemID = upd.PreviewedItemID
		}
		if err := s.configRepo.Update(ctx, cfg); err != nil {
			return err
		}
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
