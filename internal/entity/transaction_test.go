package entity

import (
	"FinTrack/internal/api/ledger"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	cases := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{"valid expense", Transaction{Type: TransactionTypeExpense, Amount: 100}, nil},
		{"valid income", Transaction{Type: TransactionTypeIncome, Amount: 0.01}, nil},
		{"missing type", Transaction{Amount: 100}, ledger.ErrInvalidTransactionType},
		{"unknown type", Transaction{Type: "transfer", Amount: 100}, ledger.ErrInvalidTransactionType},
		{"zero amount", Transaction{Type: TransactionTypeExpense}, ledger.ErrInvalidAmount},
		{"negative amount", Transaction{Type: TransactionTypeExpense, Amount: -1}, ledger.ErrInvalidAmount},
		{"nan amount", Transaction{Type: TransactionTypeExpense, Amount: math.NaN()}, ledger.ErrInvalidAmount},
		{"infinite amount", Transaction{Type: TransactionTypeExpense, Amount: math.Inf(1)}, ledger.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.transaction.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestTransactionApplyDefaults(t *testing.T) {
	expense := Transaction{Type: TransactionTypeExpense, Amount: 100}
	expense.ApplyDefaults()
	require.Equal(t, DefaultExpenseCategory, expense.Category)
	require.Equal(t, DefaultDescription, expense.Description)

	income := Transaction{Type: TransactionTypeIncome, Amount: 100}
	income.ApplyDefaults()
	require.Equal(t, DefaultIncomeCategory, income.Category)

	tagged := Transaction{Type: TransactionTypeExpense, Amount: 100, Category: "Subscriptions", Description: "Streaming"}
	tagged.ApplyDefaults()
	require.Equal(t, "Subscriptions", tagged.Category)
	require.Equal(t, "Streaming", tagged.Description)
}
