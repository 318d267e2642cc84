package dto

import "time"

type CreateUserRequestDTO struct {
	Name string `json:"name" example:"Alice"`
}

type UserResponseDTO struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Alice"`
	Balance int    `json:"balance" example:"100"`
}

type TransactionResponseDTO struct {
	TransactionID int       `json:"transaction_id" example:"7"`
	Description   string    `json:"description" example:"Initial balance"`
	AmountChange  int       `json:"amount_change" example:"100"`
	NewBalance    int       `json:"new_balance" example:"100"`
	Timestamp     time.Time `json:"timestamp" example:"2024-12-09T16:09:57+03:00"`
	RelatedItemID *int      `json:"related_item_id" example:"3"`
	RelatedBidID  *int      `json:"related_bid_id" example:"5"`
}
