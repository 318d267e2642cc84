package dto

import "time"

type CreateItemRequestDTO struct {
	Description string `json:"description" example:"Antique pocket watch"`
	SellerID    *int   `json:"seller_id" example:"1"`
}

type ItemResponseDTO struct {
	ID           int    `json:"id" example:"3"`
	Description  string `json:"description" example:"Antique pocket watch"`
	SellerID     int    `json:"seller_id" example:"1"`
	Status       string `json:"status" example:"available"`
	CurrentPrice *int   `json:"current_price" example:"50"`
	OwnerID      *int   `json:"owner_id" example:"2"`
}

type ItemListingResponseDTO struct {
	ID           int     `json:"id" example:"3"`
	Description  string  `json:"description" example:"Antique pocket watch"`
	SellerID     int     `json:"seller_id" example:"1"`
	SellerName   string  `json:"seller_name" example:"Alice"`
	Status       string  `json:"status" example:"available"`
	CurrentPrice *int    `json:"current_price" example:"50"`
	OwnerID      *int    `json:"owner_id" example:"2"`
	OwnerName    *string `json:"owner_name" example:"Bob"`
}

type ItemDetailsResponseDTO struct {
	ItemListingResponseDTO
	Bids []BidResponseDTO `json:"bids"`
}

type BidResponseDTO struct {
	BidID     int       `json:"bid_id" example:"5"`
	UserID    int       `json:"user_id" example:"2"`
	UserName  *string   `json:"user_name,omitempty" example:"Bob"`
	BidAmount int       `json:"bid_amount" example:"50"`
	Timestamp time.Time `json:"timestamp" example:"2024-12-09T16:09:57+03:00"`
	Status    string    `json:"status" example:"active"`
}
