package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/krotovic/auctionhouse/internal/domain"
	"github.com/krotovic/auctionhouse/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, transactionRepo, txManager)
	defer ctrl.Finish()
	return service, userRepo, transactionRepo, txManager
}

func TestRecordTransaction(t *testing.T) {
	service, userRepo, transactionRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amount        int
		description   string
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Successful credit",
			userID:      1,
			amount:      100,
			description: "Initial balance",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				userRepo.EXPECT().ApplyBalanceChange(gomock.Any(), 1, 100).Return(100, true, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, 1, txn.UserID)
						assert.Equal(t, 100, txn.AmountChange)
						assert.Equal(t, 100, txn.NewBalance)
						assert.Equal(t, "Initial balance", txn.Description)
						txn.ID = 1
						return txn, nil
					})
			},
			expectedError: nil,
		},
		{
			name:        "Overdraw rejected with ErrInsufficientFunds",
			userID:      1,
			amount:      -200,
			description: "Won auction for item #3",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				userRepo.EXPECT().ApplyBalanceChange(gomock.Any(), 1, -200).Return(0, false, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:        "Error applying balance change",
			userID:      1,
			amount:      50,
			description: "Sold item #3",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				userRepo.EXPECT().ApplyBalanceChange(gomock.Any(), 1, 50).Return(0, false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:        "Error appending ledger entry",
			userID:      1,
			amount:      50,
			description: "Sold item #3",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				userRepo.EXPECT().ApplyBalanceChange(gomock.Any(), 1, 50).Return(150, true, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.RecordTransaction(context.Background(), tt.userID, tt.amount, tt.description, nil, nil)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
				assert.Equal(t, tt.description, txn.Description)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, _, transactionRepo, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedTxns  []domain.Transaction
		expectedError error
	}{
		{
			name:   "Retrieve history successfully",
			userID: 1,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{
						ID:           1,
						UserID:       1,
						Description:  "Initial balance",
						AmountChange: 100,
						NewBalance:   100,
						Timestamp:    now,
					},
				}, nil)
			},
			expectedTxns: []domain.Transaction{
				{
					ID:           1,
					UserID:       1,
					Description:  "Initial balance",
					AmountChange: 100,
					NewBalance:   100,
					Timestamp:    now,
				},
			},
			expectedError: nil,
		},
		{
			name:   "Error retrieving history",
			userID: 1,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedTxns:  nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txns, err := service.GetHistory(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTxns, txns)
			}
		})
	}
}
