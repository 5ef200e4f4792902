package insightService

import (
	"FinTrack/internal/api/analytics"
	"FinTrack/internal/api/insight"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *insightService) GetInsights(ctx context.Context, reference time.Time) (insight.InsightsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transactions := s.ledgerRepository.List()
	comparison := analytics.MonthlyComparison(transactions, reference)
	categories := currentMonthBreakdown(transactions, reference)

	monthlyBudget, err := s.budgetRepository.GetMonthlyBudget(ctx)
	if err != nil {
		// A missing settings store must not take insights down; the budget
		// rules simply do not fire.
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load monthly budget, skipping budget rules")
		monthlyBudget = nil
	}

	recommendations := generateRecommendations(ruleInput{
		currentSpending:  comparison.Current,
		previousSpending: comparison.Previous,
		monthlyBudget:    monthlyBudget,
		categories:       categories,
	})

	return insight.InsightsResponse{
		PreviousMonthSpending: comparison.Previous,
		CurrentMonthSpending:  comparison.Current,
		MonthlyTrend:          comparison.Trend,
		MonthlyChange:         math.Abs(comparison.Difference),
		Categories:            categories,
		Recommendations:       recommendations,
	}, nil
}

// currentMonthBreakdown groups the reference month's expenses by category,
// largest first. Equal totals order lexicographically, matching the
// tie-break of MostSpentCategory.
func currentMonthBreakdown(transactions []entity.Transaction, reference time.Time) []analytics.CategoryAmount {
	refYear, refMonth, _ := reference.Date()

	var currentMonth []entity.Transaction
	for _, transaction := range transactions {
		year, month, _ := transaction.Date.Date()
		if year == refYear && month == refMonth {
			currentMonth = append(currentMonth, transaction)
		}
	}

	categories := analytics.CategoryBreakdown(currentMonth)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Amount != categories[j].Amount {
			return categories[i].Amount > categories[j].Amount
		}
		return categories[i].Name < categories[j].Name
	})

	return categories
}
