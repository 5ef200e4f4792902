package ledgerRepository

import (
	"FinTrack/internal/entity"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestRepository() Repository {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(log)
}

func makeTransaction(id string, transactionType entity.TransactionType, amount float64) entity.Transaction {
	return entity.Transaction{
		ID:        id,
		Type:      transactionType,
		Amount:    amount,
		Category:  entity.CategoryFoodAndDining,
		Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
}

func TestRepository_InsertPrependsNewestFirst(t *testing.T) {
	repo := newTestRepository()

	repo.Insert(makeTransaction("first", entity.TransactionTypeExpense, 5000))
	repo.Insert(makeTransaction("second", entity.TransactionTypeExpense, 3000))

	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, "second", list[0].ID)
	require.Equal(t, "first", list[1].ID)
}

func TestRepository_ListReturnsSnapshot(t *testing.T) {
	repo := newTestRepository()
	repo.Insert(makeTransaction("a", entity.TransactionTypeExpense, 100))

	snapshot := repo.List()
	snapshot[0].Amount = 999999

	require.Equal(t, float64(100), repo.List()[0].Amount)
}

func TestRepository_DeleteRemovesExactlyOne(t *testing.T) {
	repo := newTestRepository()
	repo.Insert(makeTransaction("a", entity.TransactionTypeExpense, 100))
	repo.Insert(makeTransaction("b", entity.TransactionTypeIncome, 200))
	repo.Insert(makeTransaction("c", entity.TransactionTypeExpense, 300))

	require.True(t, repo.Delete("b"))
	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, "c", list[0].ID)
	require.Equal(t, "a", list[1].ID)
}

func TestRepository_DeleteAbsentIDIsNoOp(t *testing.T) {
	repo := newTestRepository()
	repo.Insert(makeTransaction("a", entity.TransactionTypeExpense, 100))

	require.False(t, repo.Delete("missing"))
	require.Len(t, repo.List(), 1)
}

func TestRepository_Reset(t *testing.T) {
	repo := newTestRepository()
	repo.Insert(makeTransaction("a", entity.TransactionTypeExpense, 100))
	repo.Insert(makeTransaction("b", entity.TransactionTypeIncome, 200))

	repo.Reset()
	require.Empty(t, repo.List())
}

func TestRepository_ListByType(t *testing.T) {
	repo := newTestRepository()
	repo.Insert(makeTransaction("a", entity.TransactionTypeExpense, 100))
	repo.Insert(makeTransaction("b", entity.TransactionTypeIncome, 200))
	repo.Insert(makeTransaction("c", entity.TransactionTypeExpense, 300))

	expenses := repo.ListByType(entity.TransactionTypeExpense)
	require.Len(t, expenses, 2)
	require.Equal(t, "c", expenses[0].ID)
	require.Equal(t, "a", expenses[1].ID)

	incomes := repo.ListByType(entity.TransactionTypeIncome)
	require.Len(t, incomes, 1)
	require.Equal(t, "b", incomes[0].ID)
}
