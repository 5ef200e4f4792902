package budget

import "FinTrack/pkg/response"

var (
	ErrInvalidBudgetAmount = response.NewError(400, "monthly budget must be positive")
	ErrLoadSettings        = response.NewError(500, "failed to load budget settings")
	ErrSaveSettings        = response.NewError(500, "failed to save budget settings")
)
