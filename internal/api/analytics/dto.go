package analytics

type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
}

type SummaryResponse struct {
	TotalIncome       float64 `json:"total_income"`
	TotalExpenses     float64 `json:"total_expenses"`
	Balance           float64 `json:"balance"`
	SavingsRate       int     `json:"savings_rate"`
	AverageDailySpend float64 `json:"average_daily_spend"`
	MostSpentCategory string  `json:"most_spent_category"`
}

type BreakdownResponse struct {
	Categories []CategoryAmount `json:"categories"`
}

type MonthlyComparisonResponse struct {
	Previous   float64 `json:"previous"`
	Current    float64 `json:"current"`
	Difference float64 `json:"difference"`
	Trend      float64 `json:"trend"`
}

type DailyPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type DailySeriesResponse struct {
	Days   int          `json:"days"`
	Points []DailyPoint `json:"points"`
}

type WeeklyPoint struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

type WeeklySeriesResponse struct {
	Points []WeeklyPoint `json:"points"`
}
