package repo

import (
	"github.com/krotovic/auctionhouse/internal/pg"
	bidrepo "github.com/krotovic/auctionhouse/internal/repo/bid-repo"
	configrepo "github.com/krotovic/auctionhouse/internal/repo/config-repo"
	itemrepo "github.com/krotovic/auctionhouse/internal/repo/item-repo"
	transactionrepo "github.com/krotovic/auctionhouse/internal/repo/transaction-repo"
	userrepo "github.com/krotovic/auctionhouse/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ItemRepo        *itemrepo.Repository
	BidRepo         *bidrepo.Repository
	TransactionRepo *transactionrepo.Repository
	ConfigRepo      *configrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ItemRepo:        itemrepo.New(conn),
		BidRepo:         bidrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		ConfigRepo:      configrepo.New(conn),
	}
}
