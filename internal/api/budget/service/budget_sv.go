package budgetService

import (
	"FinTrack/internal/api/analytics"
	"FinTrack/internal/api/budget"
	contextPkg "FinTrack/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	// Fixed policy: usage above 90% of the monthly budget is over-threshold.
	usageThreshold = 0.9

	StatusOverThreshold = "over-threshold"
	StatusNormal        = "normal"
	StatusNoBudget      = "no-budget"
)

// UsageRatio is spent over budget. Callers must guard budget presence; the
// precondition is budget > 0.
func UsageRatio(spent, monthlyBudget float64) float64 {
	return spent / monthlyBudget
}

func Status(usageRatio float64) string {
	if usageRatio > usageThreshold {
		return StatusOverThreshold
	}
	return StatusNormal
}

// Remaining floors at zero for display; the true deficit is reported by
// Overspend instead of a negative remaining.
func Remaining(spent, monthlyBudget float64) float64 {
	if remaining := monthlyBudget - spent; remaining > 0 {
		return remaining
	}
	return 0
}

func Overspend(spent, monthlyBudget float64) float64 {
	if deficit := spent - monthlyBudget; deficit > 0 {
		return deficit
	}
	return 0
}

func (s *budgetService) GetSettings(ctx context.Context) (budget.SettingsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	monthlyBudget, err := s.budgetRepository.GetMonthlyBudget(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load monthly budget")
		return budget.SettingsResponse{}, budget.ErrLoadSettings
	}

	alertEnabled, err := s.budgetRepository.GetAlertEnabled(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load budget alert flag")
		return budget.SettingsResponse{}, budget.ErrLoadSettings
	}

	return budget.SettingsResponse{
		MonthlyBudget: monthlyBudget,
		AlertEnabled:  alertEnabled,
	}, nil
}

func (s *budgetService) SetMonthlyBudget(ctx context.Context, req budget.UpdateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if req.MonthlyBudget <= 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.MonthlyBudget,
		}).Warn("Rejected non-positive monthly budget")
		return budget.ErrInvalidBudgetAmount
	}

	if err := s.budgetRepository.SetMonthlyBudget(ctx, req.MonthlyBudget); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save monthly budget")
		return budget.ErrSaveSettings
	}

	return nil
}

func (s *budgetService) SetAlertEnabled(ctx context.Context, enabled bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.budgetRepository.SetAlertEnabled(ctx, enabled); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save budget alert flag")
		return budget.ErrSaveSettings
	}

	return nil
}

// GetStatus combines the stored budget with the current month's expense
// total derived from the live ledger snapshot.
func (s *budgetService) GetStatus(ctx context.Context, reference time.Time) (budget.StatusResponse, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	spent := analytics.MonthlyComparison(s.ledgerRepository.List(), reference).Current

	status := budget.StatusResponse{
		BudgetSet:     settings.MonthlyBudget != nil,
		MonthlyBudget: settings.MonthlyBudget,
		Spent:         spent,
		Status:        StatusNoBudget,
		AlertEnabled:  settings.AlertEnabled,
	}

	if settings.MonthlyBudget == nil {
		return status, nil
	}

	ratio := UsageRatio(spent, *settings.MonthlyBudget)
	remaining := Remaining(spent, *settings.MonthlyBudget)
	overspend := Overspend(spent, *settings.MonthlyBudget)

	status.UsageRatio = &ratio
	status.Status = Status(ratio)
	status.Remaining = &remaining
	status.Overspend = &overspend

	return status, nil
}
