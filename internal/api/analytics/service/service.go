package analyticsService

import (
	"FinTrack/internal/api/analytics"
	ledgerRepository "FinTrack/internal/api/ledger/repository"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalyticsService interface {
	GetSummary(ctx context.Context, reference time.Time) analytics.SummaryResponse
	GetCategoryBreakdown(ctx context.Context) analytics.BreakdownResponse
	GetIncomeBySource(ctx context.Context) analytics.BreakdownResponse
	GetMonthlyComparison(ctx context.Context, reference time.Time) analytics.MonthlyComparisonResponse
	GetDailySeries(ctx context.Context, days int, reference time.Time) (analytics.DailySeriesResponse, error)
	GetWeeklySeries(ctx context.Context, reference time.Time) analytics.WeeklySeriesResponse
}

type analyticsService struct {
	log              *logrus.Logger
	ledgerRepository ledgerRepository.Repository
}

func NewAnalyticsService(log *logrus.Logger, lr ledgerRepository.Repository) IAnalyticsService {
	return &analyticsService{
		log:              log,
		ledgerRepository: lr,
	}
}
