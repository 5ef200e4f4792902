package analyticsService

import (
	"FinTrack/internal/api/analytics"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Every derived value is recomputed from the current ledger snapshot; nothing
// is cached between calls.

func (s *analyticsService) GetSummary(ctx context.Context, reference time.Time) analytics.SummaryResponse {
	transactions := s.ledgerRepository.List()

	totalIncome := analytics.TotalByType(transactions, entity.TransactionTypeIncome)
	totalExpenses := analytics.TotalByType(transactions, entity.TransactionTypeExpense)
	breakdown := analytics.CategoryBreakdown(transactions)

	return analytics.SummaryResponse{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		Balance:           totalIncome - totalExpenses,
		SavingsRate:       analytics.SavingsRate(totalIncome, totalExpenses),
		AverageDailySpend: analytics.AverageDailySpend(transactions),
		MostSpentCategory: analytics.MostSpentCategory(breakdown),
	}
}

func (s *analyticsService) GetCategoryBreakdown(ctx context.Context) analytics.BreakdownResponse {
	return analytics.BreakdownResponse{
		Categories: analytics.CategoryBreakdown(s.ledgerRepository.List()),
	}
}

func (s *analyticsService) GetIncomeBySource(ctx context.Context) analytics.BreakdownResponse {
	return analytics.BreakdownResponse{
		Categories: analytics.IncomeBySource(s.ledgerRepository.List()),
	}
}

func (s *analyticsService) GetMonthlyComparison(ctx context.Context, reference time.Time) analytics.MonthlyComparisonResponse {
	return analytics.MonthlyComparison(s.ledgerRepository.List(), reference)
}

func (s *analyticsService) GetDailySeries(ctx context.Context, days int, reference time.Time) (analytics.DailySeriesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if days < 1 || days > 366 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"days":       days,
		}).Warn("Invalid days parameter for daily series")
		return analytics.DailySeriesResponse{}, analytics.ErrInvalidDaysParameter
	}

	return analytics.DailySeriesResponse{
		Days:   days,
		Points: analytics.DailySeries(s.ledgerRepository.List(), days, reference),
	}, nil
}

func (s *analyticsService) GetWeeklySeries(ctx context.Context, reference time.Time) analytics.WeeklySeriesResponse {
	return analytics.WeeklySeriesResponse{
		Points: analytics.WeeklySeries(s.ledgerRepository.List(), reference),
	}
}
