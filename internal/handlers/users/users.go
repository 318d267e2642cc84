package users

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
	"github.com/krotovic/auctionhouse/internal/service/userservice"
	"github.com/krotovic/auctionhouse/pkg/utils"
)

type Service interface {
	CreateUser(ctx context.Context, name string) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) error
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser godoc
//
//	@Summary		Create a new user
//	@Description	Create a user account seeded with the initial balance grant
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User name"
//	@Success		201		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.UserResponseDTO{
		ID:      user.ID,
		Name:    user.Name,
		Balance: user.Balance,
	})
}

// GetUser godoc
//
//	@Summary		Get a user
//	@Description	Retrieve a user's id, name and current balance
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user ID"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID must be a valid integer")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:      user.ID,
		Name:    user.Name,
		Balance: user.Balance,
	})
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Remove a user account; fails while items or bids still reference it
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	int	true	"User ID"
//	@Success		204	"User deleted"
//	@Failure		400	{object}	utils.Response	"Invalid user ID"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"User still referenced"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID must be a valid integer")
		return
	}

	err = h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, userservice.ErrUserHasRecords):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetTransactions godoc
//
//	@Summary		Get user transaction history
//	@Description	Retrieve the user's ledger entries, most recent first
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user ID"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/transactions [get]
func (h *UserHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID must be a valid integer")
		return
	}

	txns, err := h.userService.GetTransactions(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			TransactionID: txn.ID,
			Description:   txn.Description,
			AmountChange:  txn.AmountChange,
			NewBalance:    txn.NewBalance,
			Timestamp:     txn.Timestamp,
			RelatedItemID: txn.RelatedItemID,
			RelatedBidID:  txn.RelatedBidID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
