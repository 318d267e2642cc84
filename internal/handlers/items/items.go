package items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/dto"
	"github.com/krotovic/auctionhouse/internal/service/itemservice"
	"github.com/krotovic/auctionhouse/pkg/utils"
)

type Service interface {
	CreateItem(ctx context.Context, description string, sellerID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.ItemListing, error)
	GetItem(ctx context.Context, id int) (*itemservice.ItemDetails, error)
	DeleteItem(ctx context.Context, id int) error
}

type ItemHandler struct {
	itemService Service
}

func New(itemService Service) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem godoc
//
//	@Summary		Add a new item
//	@Description	List an item for sale; gated by the allow_new_items configuration flag
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateItemRequestDTO	true	"Item payload"
//	@Success		201		{object}	dto.ItemResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or unknown seller"
//	@Failure		403		{object}	utils.Response	"New items currently disallowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Description is required and must be a non-empty string")
		return
	}
	if req.SellerID == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "seller_id is required and must be an integer")
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), description, *req.SellerID)
	if err != nil {
		switch {
		case errors.Is(err, itemservice.ErrNewItemsNotAllowed):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, itemservice.ErrSellerNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toItemDTO(item))
}

// ListItems godoc
//
//	@Summary		List all items
//	@Description	Retrieve every item with its seller, status, owner and current price
//	@Tags			Items
//	@Produce		json
//	@Success		200	{array}		dto.ItemListingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	listings, err := h.itemService.ListItems(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ItemListingResponseDTO, len(listings))
	for i, l := range listings {
		response[i] = toListingDTO(&l)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetItem godoc
//
//	@Summary		Get an item
//	@Description	Retrieve a single item with its bids and related names
//	@Tags			Items
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	dto.ItemDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid item ID"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Item ID must be a valid integer")
		return
	}

	details, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, itemservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	bids := make([]dto.BidResponseDTO, len(details.Bids))
	for i, b := range details.Bids {
		bids[i] = dto.BidResponseDTO{
			BidID:     b.ID,
			UserID:    b.UserID,
			UserName:  b.UserName,
			BidAmount: b.BidAmount,
			Timestamp: b.Timestamp,
			Status:    b.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ItemDetailsResponseDTO{
		ItemListingResponseDTO: toListingDTO(&details.ItemListing),
		Bids:                   bids,
	})
}

// DeleteItem godoc
//
//	@Summary		Delete an item
//	@Description	Remove an item that is not under auction and never sold
//	@Tags			Items
//	@Produce		json
//	@Param			id	path	int	true	"Item ID"
//	@Success		204	"Item deleted"
//	@Failure		400	{object}	utils.Response	"Invalid item ID"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		409	{object}	utils.Response	"Item in auction, sold, or still referenced"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Item ID must be a valid integer")
		return
	}

	err = h.itemService.DeleteItem(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, itemservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, itemservice.ErrItemInAuction),
			errors.Is(err, itemservice.ErrItemSold),
			errors.Is(err, itemservice.ErrItemReferenced):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
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

func toListingDTO(l *domain.ItemListing) dto.ItemListingResponseDTO {
	return dto.ItemListingResponseDTO{
		ID:           l.ID,
		Description:  l.Description,
		SellerID:     l.SellerID,
		SellerName:   l.SellerName,
		Status:       l.Status,
		CurrentPrice: l.CurrentPrice,
		OwnerID:      l.OwnerID,
		OwnerName:    l.OwnerName,
	}
}
