package domain

import "time"

// Item lifecycle states. Sold, passed and cancelled are terminal.
const (
	ItemStatusAvailable     string = "available"
	ItemStatusActiveAuction string = "active_auction"
	ItemStatusSold          string = "sold"
	ItemStatusPassed        string = "passed"
	ItemStatusCancelled     string = "cancelled"
)

// Bid lifecycle states. Won, lost and cancelled are terminal.
const (
	BidStatusActive    string = "active"
	BidStatusOutbid    string = "outbid"
	BidStatusWinning   string = "winning"
	BidStatusCancelled string = "cancelled"
	BidStatusWon       string = "won"
	BidStatusLost      string = "lost"
)

// Supported auction types.
const (
	AuctionTypeRandom           string = "random"
	AuctionTypeEnglish          string = "english"
	AuctionTypeDutch            string = "dutch"
	AuctionTypeFirstPriceSealed string = "first_price_sealed"
	AuctionTypeVikrey           string = "vikrey"
	AuctionTypeChinese          string = "chinese"
	AuctionTypePenny            string = "penny"
)

func IsValidAuctionType(t string) bool {
	switch t {
	case AuctionTypeRandom, AuctionTypeEnglish, AuctionTypeDutch,
		AuctionTypeFirstPriceSealed, AuctionTypeVikrey, AuctionTypeChinese, AuctionTypePenny:
		return true
	}
	return false
}

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Balance   int       `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

type Item struct {
	ID           int       `db:"id"`
	Description  string    `db:"description"`
	SellerID     int       `db:"seller_id"`
	Status       string    `db:"status"`
	CurrentPrice *int      `db:"current_price"`
	OwnerID      *int      `db:"owner_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// ItemListing is the read projection of an item with the seller and owner
// names joined in at query time.
type ItemListing struct {
	Item
	SellerName string  `db:"seller_name"`
	OwnerName  *string `db:"owner_name"`
}

type Bid struct {
	ID        int       `db:"id"`
	ItemID    int       `db:"item_id"`
	UserID    int       `db:"user_id"`
	BidAmount int       `db:"bid_amount"`
	Timestamp time.Time `db:"timestamp"`
	Status    string    `db:"status"`
}

// BidListing is the read projection of a bid with the bidder name joined in.
type BidListing struct {
	Bid
	UserName *string `db:"user_name"`
}

// Transaction is an immutable ledger entry. NewBalance is the user balance
// that resulted from applying AmountChange.
type Transaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Description   string    `db:"description"`
	AmountChange  int       `db:"amount_change"`
	NewBalance    int       `db:"new_balance"`
	Timestamp     time.Time `db:"timestamp"`
	RelatedItemID *int      `db:"related_item_id"`
	RelatedBidID  *int      `db:"related_bid_id"`
}

// AuctionConfig is the single-row configuration aggregate (id = 1).
type AuctionConfig struct {
	ID                   int       `db:"id"`
	AuctionType          string    `db:"auction_type"`
	AllowNewItems        bool      `db:"allow_new_items"`
	CurrentAuctionItemID *int      `db:"current_auction_item_id"`
	PreviewedItemID      *int      `db:"previewed_item_id"`
	UpdatedAt            time.Time `db:"updated_at"`
}
