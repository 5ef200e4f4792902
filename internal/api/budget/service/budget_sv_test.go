package budgetService

import (
	"FinTrack/internal/api/budget"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"FinTrack/internal/entity"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	monthlyBudget *float64
	alertEnabled  bool
}

func (f *fakeSettings) GetMonthlyBudget(ctx context.Context) (*float64, error) {
	return f.monthlyBudget, nil
}

func (f *fakeSettings) SetMonthlyBudget(ctx context.Context, amount float64) error {
	f.monthlyBudget = &amount
	return nil
}

func (f *fakeSettings) GetAlertEnabled(ctx context.Context) (bool, error) {
	return f.alertEnabled, nil
}

func (f *fakeSettings) SetAlertEnabled(ctx context.Context, enabled bool) error {
	f.alertEnabled = enabled
	return nil
}

func newTestService(settings *fakeSettings) (IBudgetService, ledgerRepository.Repository) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	ledgerRepo := ledgerRepository.New(log)
	return NewBudgetService(log, settings, ledgerRepo), ledgerRepo
}

func TestUsageRatio(t *testing.T) {
	require.Equal(t, 0.95, UsageRatio(9500, 10000))
	require.Equal(t, 0.5, UsageRatio(5000, 10000))
}

func TestStatus(t *testing.T) {
	require.Equal(t, StatusNormal, Status(0.5))
	require.Equal(t, StatusNormal, Status(0.9))
	require.Equal(t, StatusOverThreshold, Status(0.95))
	require.Equal(t, StatusOverThreshold, Status(1.4))
}

func TestRemainingAndOverspend(t *testing.T) {
	require.Equal(t, float64(500), Remaining(9500, 10000))
	require.Equal(t, float64(0), Remaining(12000, 10000))
	require.Equal(t, float64(0), Overspend(9500, 10000))
	require.Equal(t, float64(2000), Overspend(12000, 10000))
}

func TestSetMonthlyBudget_RejectsNonPositive(t *testing.T) {
	settings := &fakeSettings{alertEnabled: true}
	service, _ := newTestService(settings)

	err := service.SetMonthlyBudget(context.Background(), budget.UpdateBudgetRequest{MonthlyBudget: 0})
	require.ErrorIs(t, err, budget.ErrInvalidBudgetAmount)
	require.Nil(t, settings.monthlyBudget)

	err = service.SetMonthlyBudget(context.Background(), budget.UpdateBudgetRequest{MonthlyBudget: 10000})
	require.NoError(t, err)
	require.NotNil(t, settings.monthlyBudget)
	require.Equal(t, float64(10000), *settings.monthlyBudget)
}

func TestGetStatus_NoBudgetSet(t *testing.T) {
	service, _ := newTestService(&fakeSettings{alertEnabled: true})

	status, err := service.GetStatus(context.Background(), time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.False(t, status.BudgetSet)
	require.Equal(t, StatusNoBudget, status.Status)
	require.Nil(t, status.UsageRatio)
	require.Nil(t, status.Remaining)
}

func TestGetStatus_OverThreshold(t *testing.T) {
	monthlyBudget := 10000.0
	service, ledgerRepo := newTestService(&fakeSettings{monthlyBudget: &monthlyBudget, alertEnabled: true})

	reference := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	ledgerRepo.Insert(entity.Transaction{
		ID:       "a",
		Type:     entity.TransactionTypeExpense,
		Amount:   9500,
		Category: entity.CategoryFoodAndDining,
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	// Outside the reference month, must not count.
	ledgerRepo.Insert(entity.Transaction{
		ID:       "b",
		Type:     entity.TransactionTypeExpense,
		Amount:   4000,
		Category: entity.CategoryHousing,
		Date:     time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
	})

	status, err := service.GetStatus(context.Background(), reference)
	require.NoError(t, err)
	require.True(t, status.BudgetSet)
	require.Equal(t, float64(9500), status.Spent)
	require.NotNil(t, status.UsageRatio)
	require.Equal(t, 0.95, *status.UsageRatio)
	require.Equal(t, StatusOverThreshold, status.Status)
	require.Equal(t, float64(500), *status.Remaining)
	require.Equal(t, float64(0), *status.Overspend)
}
