package insight

import "FinTrack/internal/api/analytics"

type InsightsResponse struct {
	PreviousMonthSpending float64                    `json:"previous_month_spending"`
	CurrentMonthSpending  float64                    `json:"current_month_spending"`
	MonthlyTrend          float64                    `json:"monthly_trend"`
	MonthlyChange         float64                    `json:"monthly_change"`
	Categories            []analytics.CategoryAmount `json:"categories"`
	Recommendations       []string                   `json:"recommendations"`
}
