package ledgerService

import (
	"FinTrack/internal/api/ledger"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestService() (ILedgerService, ledgerRepository.Repository) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := ledgerRepository.New(log)
	return NewLedgerService(log, repo, utils.New()), repo
}

func TestCreateTransaction_Valid(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type:        "expense",
		Amount:      5000,
		Category:    "Food & Dining",
		Description: "Lunch",
		Date:        "2024-01-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, entity.TransactionTypeExpense, created.Type)
	require.False(t, created.CreatedAt.IsZero())

	list := repo.List()
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
}

func TestCreateTransaction_NewestFirst(t *testing.T) {
	service, repo := newTestService()

	first, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "expense", Amount: 5000, Date: "2024-01-10",
	})
	require.NoError(t, err)

	second, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "income", Amount: 3000, Date: "2024-01-15",
	})
	require.NoError(t, err)

	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestCreateTransaction_DefaultsApplied(t *testing.T) {
	service, _ := newTestService()

	expense, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "expense", Amount: 100,
	})
	require.NoError(t, err)
	require.Equal(t, entity.DefaultExpenseCategory, expense.Category)
	require.Equal(t, entity.DefaultDescription, expense.Description)

	income, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "income", Amount: 100,
	})
	require.NoError(t, err)
	require.Equal(t, entity.DefaultIncomeCategory, income.Category)
}

func TestCreateTransaction_RejectsInvalidInput(t *testing.T) {
	service, repo := newTestService()

	cases := []struct {
		name    string
		req     ledger.CreateTransactionRequest
		wantErr error
	}{
		{"missing type", ledger.CreateTransactionRequest{Amount: 100}, ledger.ErrInvalidTransactionType},
		{"unknown type", ledger.CreateTransactionRequest{Type: "transfer", Amount: 100}, ledger.ErrInvalidTransactionType},
		{"zero amount", ledger.CreateTransactionRequest{Type: "expense", Amount: 0}, ledger.ErrInvalidAmount},
		{"negative amount", ledger.CreateTransactionRequest{Type: "expense", Amount: -50}, ledger.ErrInvalidAmount},
		{"bad date", ledger.CreateTransactionRequest{Type: "expense", Amount: 100, Date: "not-a-date"}, ledger.ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateTransaction(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, repo.List(), "store must stay unchanged on rejection")
		})
	}
}

func TestGetTransactions_TypeFilter(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "expense", Amount: 5000,
	})
	require.NoError(t, err)
	_, err = service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "income", Amount: 9000,
	})
	require.NoError(t, err)

	all, err := service.GetTransactions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	expenses, err := service.GetTransactions(context.Background(), "expense")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.Equal(t, entity.TransactionTypeExpense, expenses[0].Type)

	_, err = service.GetTransactions(context.Background(), "transfer")
	require.ErrorIs(t, err, ledger.ErrInvalidTypeFilter)
}

func TestDeleteAndReset(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "expense", Amount: 100,
	})
	require.NoError(t, err)

	// Absent id does not error and does not shrink the list.
	service.DeleteTransaction(context.Background(), "missing")
	require.Len(t, repo.List(), 1)

	service.DeleteTransaction(context.Background(), created.ID)
	require.Empty(t, repo.List())

	_, err = service.CreateTransaction(context.Background(), ledger.CreateTransactionRequest{
		Type: "income", Amount: 100,
	})
	require.NoError(t, err)

	service.ResetTransactions(context.Background())
	require.Empty(t, repo.List())
}
