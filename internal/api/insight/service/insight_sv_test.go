package insightService

import (
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"FinTrack/internal/entity"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	monthlyBudget *float64
}

func (f *fakeSettings) GetMonthlyBudget(ctx context.Context) (*float64, error) {
	return f.monthlyBudget, nil
}

func (f *fakeSettings) SetMonthlyBudget(ctx context.Context, amount float64) error {
	f.monthlyBudget = &amount
	return nil
}

func (f *fakeSettings) GetAlertEnabled(ctx context.Context) (bool, error) {
	return true, nil
}

func (f *fakeSettings) SetAlertEnabled(ctx context.Context, enabled bool) error {
	return nil
}

func newTestService(monthlyBudget *float64) (IInsightService, ledgerRepository.Repository) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	ledgerRepo := ledgerRepository.New(log)
	return NewInsightService(log, ledgerRepo, &fakeSettings{monthlyBudget: monthlyBudget}), ledgerRepo
}

func expense(id string, date time.Time, category string, amount float64) entity.Transaction {
	return entity.Transaction{
		ID:       id,
		Type:     entity.TransactionTypeExpense,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestGetInsights_EmptyLedgerStillHasAlwaysOnRules(t *testing.T) {
	service, _ := newTestService(nil)

	insights, err := service.GetInsights(context.Background(), time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Equal current and previous spending produce no trend message; the
	// savings tip and the spending-level affirmation always fire.
	require.Len(t, insights.Recommendations, 2)
	require.Contains(t, insights.Recommendations[0], "20% of your income")
	require.Contains(t, insights.Recommendations[1], "doing well managing your expenses")
}

func TestGetInsights_BudgetNearlySpent(t *testing.T) {
	monthlyBudget := 10000.0
	service, ledgerRepo := newTestService(&monthlyBudget)

	reference := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	ledgerRepo.Insert(expense("a", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), entity.CategoryUtilities, 9500))

	insights, err := service.GetInsights(context.Background(), reference)
	require.NoError(t, err)

	var found bool
	for _, recommendation := range insights.Recommendations {
		if strings.Contains(recommendation, "95% of your monthly budget") {
			found = true
		}
	}
	require.True(t, found, "expected the over-90%% budget warning, got %v", insights.Recommendations)
}

func TestGetInsights_RuleOrderAndThresholds(t *testing.T) {
	monthlyBudget := 1000000.0
	service, ledgerRepo := newTestService(&monthlyBudget)

	reference := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	// Current month: heavy transport and food spending, concentrated on
	// transport, above the detailed-budget level.
	ledgerRepo.Insert(expense("t1", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), entity.CategoryTransportation, 120000))
	ledgerRepo.Insert(expense("f1", time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC), entity.CategoryFoodAndDining, 90000))
	// Previous month was cheaper, so the increase warning fires first.
	ledgerRepo.Insert(expense("p1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entity.CategoryHousing, 50000))

	insights, err := service.GetInsights(context.Background(), reference)
	require.NoError(t, err)

	require.Equal(t, float64(210000), insights.CurrentMonthSpending)
	require.Equal(t, float64(50000), insights.PreviousMonthSpending)

	recommendations := insights.Recommendations
	require.Len(t, recommendations, 7)
	require.Contains(t, recommendations[0], "spending increased by 160000")
	require.Contains(t, recommendations[1], "only used 21% of your monthly budget")
	require.Contains(t, recommendations[2], "Transportation accounts for over 40%")
	require.Contains(t, recommendations[3], "transport costs are high (120000)")
	require.Contains(t, recommendations[4], "spending a lot on food (90000)")
	require.Contains(t, recommendations[5], "20% of your income")
	require.Contains(t, recommendations[6], "creating a detailed budget")
}

func TestGetInsights_SpendingDecreased(t *testing.T) {
	service, ledgerRepo := newTestService(nil)

	reference := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	ledgerRepo.Insert(expense("c", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), entity.CategoryFoodAndDining, 1000))
	ledgerRepo.Insert(expense("p", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), entity.CategoryFoodAndDining, 4000))

	insights, err := service.GetInsights(context.Background(), reference)
	require.NoError(t, err)

	require.Contains(t, insights.Recommendations[0], "spent 3000 less this month")
	require.Equal(t, float64(3000), insights.MonthlyChange)
}

func TestCurrentMonthBreakdown_SortsLargestFirst(t *testing.T) {
	reference := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		expense("a", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), entity.CategoryTransportation, 2000),
		expense("b", time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), entity.CategoryFoodAndDining, 5000),
		expense("c", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), entity.CategoryHousing, 90000),
	}

	categories := currentMonthBreakdown(transactions, reference)
	require.Len(t, categories, 2)
	require.Equal(t, entity.CategoryFoodAndDining, categories[0].Name)
	require.Equal(t, entity.CategoryTransportation, categories[1].Name)
}
