package analytics

import "FinTrack/pkg/response"

var (
	ErrInvalidDaysParameter = response.NewError(400, "days must be between 1 and 366")
)
