package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, name string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Ledger interface {
	RecordTransaction(ctx context.Context, userID int, amount int, description string, relatedItemID, relatedBidID *int) (*domain.Transaction, error)
	GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error)
}

// InitialBalance is granted to every new user through the ledger.
const InitialBalance = 100

const initialBalanceDescription = "Initial balance"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserHasRecords = errors.New("user still has items or bids")
)

type Service struct {
	repo      Repo
	ledger    Ledger
	txManager pg.TXManager
}

func New(repo Repo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// CreateUser inserts the user and seeds exactly one ledger entry with the
// initial grant, atomically. The returned user carries the seeded balance.
func (s *Service) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		u, err := s.repo.Create(ctx, name)
		if err != nil {
			return err
		}
		txn, err := s.ledger.RecordTransaction(ctx, u.ID, InitialBalance, initialBalanceDescription, nil, nil)
		if err != nil {
			return err
		}
		u.Balance = txn.NewBalance
		user = u
		return nil
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return ErrUserHasRecords
		}
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetTransactions returns the user's ledger history, most recent first. The
// user's existence is checked separately so a missing user is reported as
// not found rather than an empty history.
func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.ledger.GetHistory(ctx, userID)
}
