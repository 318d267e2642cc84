package service

import (
	"github.com/krotovic/auctionhouse/internal/handlers/auction"
	"github.com/krotovic/auctionhouse/internal/handlers/items"
	"github.com/krotovic/auctionhouse/internal/handlers/users"

	"github.com/krotovic/auctionhouse/internal/pg"
	"github.com/krotovic/auctionhouse/internal/repo"
	"github.com/krotovic/auctionhouse/internal/service/auctionservice"
	"github.com/krotovic/auctionhouse/internal/service/itemservice"
	"github.com/krotovic/auctionhouse/internal/service/ledgerservice"
	"github.com/krotovic/auctionhouse/internal/service/userservice"
)

type Services struct {
	UserService    users.Service
	ItemService    items.Service
	AuctionService auction.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.TransactionRepo, txManager)
	userService := userservice.New(repo.UserRepo, ledgerService, txManager)
	itemService := itemservice.New(repo.ItemRepo, repo.BidRepo, repo.UserRepo, repo.ConfigRepo)
	auctionService := auctionservice.New(repo.ItemRepo, repo.BidRepo, repo.UserRepo, repo.ConfigRepo, ledgerService, txManager)

	return &Services{
		UserService:    userService,
		ItemService:    itemService,
		AuctionService: auctionService,
	}
}
