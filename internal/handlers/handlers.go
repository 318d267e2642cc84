package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/krotovic/auctionhouse/docs"
	auctionhandlers "github.com/krotovic/auctionhouse/internal/handlers/auction"
	itemhandlers "github.com/krotovic/auctionhouse/internal/handlers/items"
	userhandlers "github.com/krotovic/auctionhouse/internal/handlers/users"
	"github.com/krotovic/auctionhouse/internal/service"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ItemHandler interface {
	CreateItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type AuctionHandler interface {
	StartAuction(w http.ResponseWriter, r *http.Request)
	EndAuction(w http.ResponseWriter, r *http.Request)
	PlaceBid(w http.ResponseWriter, r *http.Request)
	CancelItem(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler    UserHandler
	ItemHandler    ItemHandler
	AuctionHandler AuctionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:    userhandlers.New(s.UserService),
		ItemHandler:    itemhandlers.New(s.ItemService),
		AuctionHandler: auctionhandlers.New(s.AuctionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.UserHandler.CreateUser)
			r.Get("/{id}", h.UserHandler.GetUser)
			r.Delete("/{id}", h.UserHandler.DeleteUser)
			r.Get("/{id}/transactions", h.UserHandler.GetTransactions)
		})
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.ItemHandler.CreateItem)
			r.Get("/", h.ItemHandler.ListItems)
			r.Get("/{id}", h.ItemHandler.GetItem)
			r.Delete("/{id}", h.ItemHandler.DeleteItem)
			r.Post("/{id}/bids", h.AuctionHandler.PlaceBid)
			r.Post("/{id}/cancel", h.AuctionHandler.CancelItem)
		})
		r.Route("/auction", func(r chi.Router) {
			r.Post("/start", h.AuctionHandler.StartAuction)
			r.Post("/end", h.AuctionHandler.EndAuction)
			r.Get("/config", h.AuctionHandler.GetConfig)
			r.Patch("/config", h.AuctionHandler.UpdateConfig)
		})
	})

	return r
}
