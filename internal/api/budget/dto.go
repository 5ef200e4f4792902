package budget

type UpdateBudgetRequest struct {
	MonthlyBudget float64 `json:"monthly_budget" validate:"required,gt=0"`
}

type UpdateAlertRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type SettingsResponse struct {
	MonthlyBudget *float64 `json:"monthly_budget"`
	AlertEnabled  bool     `json:"alert_enabled"`
}

type StatusResponse struct {
	BudgetSet     bool     `json:"budget_set"`
	MonthlyBudget *float64 `json:"monthly_budget"`
	Spent         float64  `json:"spent"`
	UsageRatio    *float64 `json:"usage_ratio"`
	Status        string   `json:"status"`
	Remaining     *float64 `json:"remaining"`
	Overspend     *float64 `json:"overspend"`
	AlertEnabled  bool     `json:"alert_enabled"`
}
