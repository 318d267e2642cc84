package dto

type StartAuctionRequestDTO struct {
	ItemID        *int `json:"item_id" example:"3"`
	StartingPrice *int `json:"starting_price,omitempty" example:"100"`
}

type PlaceBidRequestDTO struct {
	UserID    *int `json:"user_id" example:"2"`
	BidAmount *int `json:"bid_amount" example:"50"`
}

type AuctionConfigResponseDTO struct {
	AuctionType          string `json:"auction_type" example:"english"`
	AllowNewItems        bool   `json:"allow_new_items" example:"true"`
	CurrentAuctionItemID *int   `json:"current_auction_item_id" example:"3"`
	PreviewedItemID      *int   `json:"previewed_item_id" example:"4"`
}

type UpdateAuctionConfigRequestDTO struct {
	AuctionType     *string `json:"auction_type,omitempty" example:"dutch"`
	AllowNewItems   *bool   `json:"allow_new_items,omitempty" example:"false"`
	PreviewedItemID *int    `json:"previewed_item_id,omitempty" example:"4"`
}
