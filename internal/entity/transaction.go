package entity

import (
	"FinTrack/internal/api/ledger"
	"math"
	"time"
)

type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

const (
	DefaultExpenseCategory = "Uncategorized"
	DefaultIncomeCategory  = "Other"
	DefaultDescription     = "No description"
)

// Well-known expense categories. Categories are free-form; these are the
// names the client picker offers and the ones analytics knows colors for.
const (
	CategoryFoodAndDining  = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryUtilities      = "Utilities"
	CategoryHousing        = "Housing"
	CategoryShopping       = "Shopping"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryOther          = "Other"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeExpense, TransactionTypeIncome:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return ledger.ErrInvalidTransactionType
	}

	if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ledger.ErrInvalidAmount
	}

	return nil
}

// ApplyDefaults fills the optional fields the client may omit. Missing
// category and description are not errors.
func (t *Transaction) ApplyDefaults() {
	if t.Category == "" {
		if t.Type == TransactionTypeIncome {
			t.Category = DefaultIncomeCategory
		} else {
			t.Category = DefaultExpenseCategory
		}
	}

	if t.Description == "" {
		t.Description = DefaultDescription
	}
}
