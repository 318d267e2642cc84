package auction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/dto"
	"github.com/krotovic/auctionhouse/internal/service/auctionservice"
	"github.com/krotovic/auctionhouse/internal/service/ledgerservice"
	"github.com/krotovic/auctionhouse/pkg/utils"
)

type Service interface {
	StartAuction(ctx context.Context, itemID int, startingPrice *int) (*domain.Item, error)
	EndAuction(ctx context.Context) (*domain.Item, error)
	PlaceBid(ctx context.Context, itemID, userID, amount int) (*domain.Bid, error)
	CancelItem(ctx context.Context, itemID int) (*domain.Item, error)
	GetConfig(ctx context.Context) (*domain.AuctionConfig, error)
	UpdateConfig(ctx context.Context, upd auctionservice.ConfigUpdate) (*domain.AuctionConfig, error)
}

type AuctionHandler struct {
	auctionService Service
}

func New(auctionService Service) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// StartAuction godoc
//
//	@Summary		Start an auction
//	@Description	Put an available item under auction; only one auction may run at a time
//	@Tags			Auction
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartAuctionRequestDTO	true	"Item to auction"
//	@Success		200		{object}	dto.ItemResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		409		{object}	utils.Response	"Auction already in progress or item not available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auction/start [post]
func (h *AuctionHandler) StartAuction(w http.ResponseWriter, r *http.Request) {
	var req dto.StartAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItemID == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "item_id is required and must be an integer")
		return
	}

	item, err := h.auctionService.StartAuction(r.Context(), *req.ItemID, req.StartingPrice)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrAuctionInProgress),
			errors.Is(err, auctionservice.ErrInvalidItemState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTO(item))
}

// EndAuction godoc
//
//	@Summary		End the current auction
//	@Description	Settle the running auction: the item sells to the winning bid or passes
//	@Tags			Auction
//	@Produce		json
//	@Success		200	{object}	dto.ItemResponseDTO
//	@Failure		402	{object}	utils.Response	"Winner has insufficient funds"
//	@Failure		409	{object}	utils.Response	"No auction is currently running"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auction/end [post]
func (h *AuctionHandler) EndAuction(w http.ResponseWriter, r *http.Request) {
	item, err := h.auctionService.EndAuction(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrAuctionNotRunning),
			errors.Is(err, auctionservice.ErrInvalidItemState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTO(item))
}

// PlaceBid godoc
//
//	@Summary		Place a bid
//	@Description	Bid on the item under auction; acceptance depends on the auction type
//	@Tags			Auction
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Item ID"
//	@Param			request	body		dto.PlaceBidRequestDTO	true	"Bid payload"
//	@Success		201		{object}	dto.BidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or bid amount"
//	@Failure		404		{object}	utils.Response	"Item or bidder not found"
//	@Failure		409		{object}	utils.Response	"Item not under auction or seller self-bid"
//	@Failure		422		{object}	utils.Response	"Bid amount too low"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Item ID must be a valid integer")
		return
	}
	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == nil || req.BidAmount == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id and bid_amount are required")
		return
	}

	bid, err := h.auctionService.PlaceBid(r.Context(), itemID, *req.UserID, *req.BidAmount)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrInvalidBidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auctionservice.ErrItemNotFound),
			errors.Is(err, auctionservice.ErrBidderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrInvalidItemState),
			errors.Is(err, auctionservice.ErrSellerBid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, auctionservice.ErrBidTooLow):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BidResponseDTO{
		BidID:     bid.ID,
		UserID:    bid.UserID,
		BidAmount: bid.BidAmount,
		Timestamp: bid.Timestamp,
		Status:    bid.Status,
	})
}

// CancelItem godoc
//
//	@Summary		Cancel an item
//	@Description	Administratively withdraw an item; all its bids are cancelled, no balance changes
//	@Tags			Auction
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	dto.ItemResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid item ID"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		409	{object}	utils.Response	"Item already in a terminal state"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id}/cancel [post]
func (h *AuctionHandler) CancelItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Item ID must be a valid integer")
		return
	}

	item, err := h.auctionService.CancelItem(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrInvalidItemState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toItemDTO(item))
}

// GetConfig godoc
//
//	@Summary		Get auction configuration
//	@Description	Retrieve the singleton auction configuration
//	@Tags			Auction
//	@Produce		json
//	@Success		200	{object}	dto.AuctionConfigResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auction/config [get]
func (h *AuctionHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.auctionService.GetConfig(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toConfigDTO(cfg))
}

// UpdateConfig godoc
//
//	@Summary		Update auction configuration
//	@Description	Partially update auction type, item-submission gate or previewed item
//	@Tags			Auction
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateAuctionConfigRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.AuctionConfigResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or auction type"
//	@Failure		409		{object}	utils.Response	"Auction type locked while auction runs"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auction/config [patch]
func (h *AuctionHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAuctionConfigRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cfg, err := h.auctionService.UpdateConfig(r.Context(), auctionservice.ConfigUpdate{
		AuctionType:     req.AuctionType,
		AllowNewItems:   req.AllowNewItems,
		PreviewedItemID: req.PreviewedItemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrInvalidAuctionType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auctionservice.ErrAuctionInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toConfigDTO(cfg))
}

func toItemDTO(item *domain.Item) dto.ItemResponseDTO {
	return dto.ItemResponseDTO{
		ID:           item.ID,
		Description:  item.Description,
		SellerID:     item.SellerID,
		Status:       item.Status,
		CurrentPrice: item.CurrentPrice,
		OwnerID:      item.OwnerID,
	}
}

func toConfigDTO(cfg *domain.AuctionConfig) dto.AuctionConfigResponseDTO {
	return dto.AuctionConfigResponseDTO{
		AuctionType:          cfg.AuctionType,
		AllowNewItems:        cfg.AllowNewItems,
		CurrentAuctionItemID: cfg.CurrentAuctionItemID,
		PreviewedItemID:      cfg.PreviewedItemID,
	}
}
