package auctionservice

import (
	"math/rand"

	"github.com/krotovic/auctionhouse/internal/domain"
)

// settlementStrategy is the per-auction-type policy hook. The state-machine
// skeleton (accept while active_auction, resolve exactly once at end) is
// shared; only acceptance and winner selection differ.
type settlementStrategy interface {
	// ValidateBid checks a new bid against the current leader.
	ValidateBid(item *domain.Item, highest *domain.Bid, amount int) error
	// WinsImmediately reports whether an accepted bid ends the auction on
	// the spot.
	WinsImmediately(item *domain.Item, amount int) bool
	// Outbids reports whether a newly accepted bid marks the previous
	// leader as outbid.
	Outbids() bool
	// PickWinner selects the winning bid, or nil when the auction passes.
	// bids are sorted by amount descending, earliest first among equals.
	PickWinner(bids []domain.Bid) *domain.Bid
	// SettlePrice returns the price the winner pays.
	SettlePrice(bids []domain.Bid, winner *domain.Bid) int
}

func strategyFor(auctionType string) (settlementStrategy, error) {
	switch auctionType {
	case domain.AuctionTypeEnglish:
		return englishStrategy{}, nil
	case domain.AuctionTypeDutch:
		return dutchStrategy{}, nil
	case domain.AuctionTypeFirstPriceSealed:
		return firstPriceStrategy{}, nil
	case domain.AuctionTypeVikrey:
		return vikreyStrategy{}, nil
	case domain.AuctionTypeRandom:
		return randomStrategy{}, nil
	case domain.AuctionTypeChinese:
		return chineseStrategy{}, nil
	case domain.AuctionTypePenny:
		return pennyStrategy{}, nil
	}
	return nil, ErrInvalidAuctionType
}

// highestOf relies on the descending sort order of bids.
func highestOf(bids []domain.Bid) *domain.Bid {
	if len(bids) == 0 {
		return nil
	}
	return &bids[0]
}

// englishStrategy: open ascending auction. Every bid must beat the current
// leader; the leader at auction end wins at their own price.
type englishStrategy struct{}

func (englishStrategy) ValidateBid(_ *domain.Item, highest *domain.Bid, amount int) error {
	if highest != nil && amount <= highest.BidAmount {
		return ErrBidTooLow
	}
	return nil
}
func (englishStrategy) WinsImmediately(*domain.Item, int) bool       { return false }
func (englishStrategy) Outbids() bool                                { return true }
func (englishStrategy) PickWinner(bids []domain.Bid) *domain.Bid     { return highestOf(bids) }
func (englishStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int { return w.BidAmount }

// dutchStrategy: descending clock. The item's current_price is the asking
// price; the first bid at or above it wins immediately.
type dutchStrategy struct{}

func (dutchStrategy) ValidateBid(item *domain.Item, _ *domain.Bid, amount int) error {
	if item.CurrentPrice != nil && amount < *item.CurrentPrice {
		return ErrBidTooLow
	}
	return nil
}
func (dutchStrategy) WinsImmediately(item *domain.Item, amount int) bool {
	return item.CurrentPrice == nil || amount >= *item.CurrentPrice
}
func (dutchStrategy) Outbids() bool                                { return false }
func (dutchStrategy) PickWinner(bids []domain.Bid) *domain.Bid     { return highestOf(bids) }
func (dutchStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int { return w.BidAmount }

// firstPriceStrategy: sealed envelopes. Every positive bid is accepted
// without revealing the leader; the highest wins at its own price.
type firstPriceStrategy struct{}

func (firstPriceStrategy) ValidateBid(*domain.Item, *domain.Bid, int) error     { return nil }
func (firstPriceStrategy) WinsImmediately(*domain.Item, int) bool               { return false }
func (firstPriceStrategy) Outbids() bool                                        { return false }
func (firstPriceStrategy) PickWinner(bids []domain.Bid) *domain.Bid             { return highestOf(bids) }
func (firstPriceStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int        { return w.BidAmount }

// vikreyStrategy: sealed like first-price, but the winner pays the
// second-highest amount (their own when no other bid exists).
type vikreyStrategy struct{}

func (vikreyStrategy) ValidateBid(*domain.Item, *domain.Bid, int) error { return nil }
func (vikreyStrategy) WinsImmediately(*domain.Item, int) bool           { return false }
func (vikreyStrategy) Outbids() bool                                    { return false }
func (vikreyStrategy) PickWinner(bids []domain.Bid) *domain.Bid         { return highestOf(bids) }
func (vikreyStrategy) SettlePrice(bids []domain.Bid, winner *domain.Bid) int {
	for _, b := range bids {
		if b.ID != winner.ID {
			return b.BidAmount
		}
	}
	return winner.BidAmount
}

// randomStrategy: every positive bid is accepted; the winner is drawn
// uniformly among them and pays their own amount.
type randomStrategy struct{}

func (randomStrategy) ValidateBid(*domain.Item, *domain.Bid, int) error { return nil }
func (randomStrategy) WinsImmediately(*domain.Item, int) bool           { return false }
func (randomStrategy) Outbids() bool                                    { return false }
func (randomStrategy) PickWinner(bids []domain.Bid) *domain.Bid {
	if len(bids) == 0 {
		return nil
	}
	return &bids[rand.Intn(len(bids))]
}
func (randomStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int { return w.BidAmount }

// chineseStrategy: open variant of first-price. All bids accumulate in the
// open; the highest wins at its own price.
type chineseStrategy struct{}

func (chineseStrategy) ValidateBid(*domain.Item, *domain.Bid, int) error  { return nil }
func (chineseStrategy) WinsImmediately(*domain.Item, int) bool            { return false }
func (chineseStrategy) Outbids() bool                                     { return false }
func (chineseStrategy) PickWinner(bids []domain.Bid) *domain.Bid          { return highestOf(bids) }
func (chineseStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int     { return w.BidAmount }

// pennyStrategy: the price climbs in unit increments, so each bid must be
// exactly one above the leader; the last (highest) bid wins.
type pennyStrategy struct{}

func (pennyStrategy) ValidateBid(_ *domain.Item, highest *domain.Bid, amount int) error {
	if highest == nil {
		if amount != 1 {
			return ErrInvalidBidAmount
		}
		return nil
	}
	if amount != highest.BidAmount+1 {
		if amount <= highest.BidAmount {
			return ErrBidTooLow
		}
		return ErrInvalidBidAmount
	}
	return nil
}
func (pennyStrategy) WinsImmediately(*domain.Item, int) bool        { return false }
func (pennyStrategy) Outbids() bool                                 { return true }
func (pennyStrategy) PickWinner(bids []domain.Bid) *domain.Bid      { return highestOf(bids) }
func (pennyStrategy) SettlePrice(_ []domain.Bid, w *domain.Bid) int { return w.BidAmount }
