package ledger

import "FinTrack/pkg/response"

var (
	ErrInvalidTransaction     = response.NewError(400, "invalid transaction data")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	ErrInvalidTypeFilter      = response.NewError(400, "invalid transaction type filter")
)
