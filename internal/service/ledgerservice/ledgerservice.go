package ledgerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

type UserRepo interface {
	ApplyBalanceChange(ctx context.Context, userID int, amount int) (int, bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

var ErrInsufficientFunds = errors.New("insufficient funds")

// Service is the only sanctioned way to change a user balance. Every change
// updates the cached balance on the user row and appends a ledger entry
// carrying the resulting balance, as one atomic unit.
type Service struct {
	userRepo        UserRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(userRepo UserRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// RecordTransaction applies amount to the user balance and appends the
// matching ledger entry. A debit that would take the balance negative fails
// with ErrInsufficientFunds and leaves both the balance and the ledger
// untouched. When the context already carries a transaction, the entry joins
// it, so a caller can bundle several balance changes into one atomic unit.
func (s *Service) RecordTransaction(ctx context.Context, userID int, amount int, description string, relatedItemID, relatedBidID *int) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, ok, err := s.userRepo.ApplyBalanceChange(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !ok {
			zap.L().Info("balance change rejected",
				zap.Int("user_id", userID), zap.Int("amount", amount))
			return ErrInsufficientFunds
		}
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:        userID,
			Description:   description,
			AmountChange:  amount,
			NewBalance:    newBalance,
			Timestamp:     time.Now(),
			RelatedItemID: relatedItemID,
			RelatedBidID:  relatedBidID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// GetHistory returns the user's ledger entries, most recent first.
func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get transaction history", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
