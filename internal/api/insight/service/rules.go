package insightService

import (
	"FinTrack/internal/api/analytics"
	"FinTrack/internal/entity"
	"fmt"
	"math"
	"strconv"
)

// Fixed policy thresholds for the recommendation rules.
const (
	budgetWarnUsage      = 90.0
	budgetRelaxUsage     = 50.0
	concentrationShare   = 0.4
	transportCostCeiling = 50000.0
	foodCostCeiling      = 80000.0
	highSpendingLevel    = 200000.0
)

type ruleInput struct {
	currentSpending  float64
	previousSpending float64
	monthlyBudget    *float64
	// categories holds the current month's expense breakdown, largest first.
	categories []analytics.CategoryAmount
}

func (in ruleInput) budgetUsage() float64 {
	return in.currentSpending / *in.monthlyBudget * 100
}

func (in ruleInput) categoryTotal(name string) float64 {
	for _, category := range in.categories {
		if category.Name == name {
			return category.Amount
		}
	}
	return 0
}

type recommendationRule struct {
	name    string
	applies func(in ruleInput) bool
	message func(in ruleInput) string
}

// recommendationRules is evaluated top to bottom; every matching rule appends
// its message, so the order here is the order the user reads.
var recommendationRules = []recommendationRule{
	{
		name: "spending_decreased",
		applies: func(in ruleInput) bool {
			return in.currentSpending < in.previousSpending
		},
		message: func(in ruleInput) string {
			savings := in.previousSpending - in.currentSpending
			return fmt.Sprintf("Great job! You've spent %s less this month. Consider putting this difference into savings.",
				formatAmount(savings))
		},
	},
	{
		name: "spending_increased",
		applies: func(in ruleInput) bool {
			return in.currentSpending > in.previousSpending
		},
		message: func(in ruleInput) string {
			increase := in.currentSpending - in.previousSpending
			return fmt.Sprintf("Your spending increased by %s this month. Review your expenses to identify areas to cut back.",
				formatAmount(increase))
		},
	},
	{
		name: "budget_nearly_spent",
		applies: func(in ruleInput) bool {
			return in.monthlyBudget != nil && *in.monthlyBudget > 0 && in.budgetUsage() > budgetWarnUsage
		},
		message: func(in ruleInput) string {
			return fmt.Sprintf("You've used %d%% of your monthly budget. Try to limit additional spending this month.",
				int(math.Round(in.budgetUsage())))
		},
	},
	{
		name: "budget_underused",
		applies: func(in ruleInput) bool {
			return in.monthlyBudget != nil && *in.monthlyBudget > 0 && in.budgetUsage() < budgetRelaxUsage
		},
		message: func(in ruleInput) string {
			return fmt.Sprintf("You've only used %d%% of your monthly budget. Consider allocating more to savings.",
				int(math.Round(in.budgetUsage())))
		},
	},
	{
		name: "category_concentration",
		applies: func(in ruleInput) bool {
			return len(in.categories) > 0 && in.categories[0].Amount > in.currentSpending*concentrationShare
		},
		message: func(in ruleInput) string {
			return fmt.Sprintf("Your spending on %s accounts for over 40%% of your total expenses. Consider ways to reduce costs in this category.",
				in.categories[0].Name)
		},
	},
	{
		name: "high_transport_cost",
		applies: func(in ruleInput) bool {
			return in.categoryTotal(entity.CategoryTransportation) > transportCostCeiling
		},
		message: func(in ruleInput) string {
			return fmt.Sprintf("Your transport costs are high (%s). Try using cheaper transport options or carpooling.",
				formatAmount(in.categoryTotal(entity.CategoryTransportation)))
		},
	},
	{
		name: "high_food_cost",
		applies: func(in ruleInput) bool {
			return in.categoryTotal(entity.CategoryFoodAndDining) > foodCostCeiling
		},
		message: func(in ruleInput) string {
			return fmt.Sprintf("You're spending a lot on food (%s). Consider meal prepping to save money.",
				formatAmount(in.categoryTotal(entity.CategoryFoodAndDining)))
		},
	},
	{
		name: "general_savings_tip",
		applies: func(in ruleInput) bool {
			return true
		},
		message: func(in ruleInput) string {
			return "Try setting aside at least 20% of your income for savings each month."
		},
	},
	{
		name: "detailed_budget_suggestion",
		applies: func(in ruleInput) bool {
			return in.currentSpending > highSpendingLevel
		},
		message: func(in ruleInput) string {
			return "Based on your spending level, you might benefit from creating a detailed budget to track expenses more closely."
		},
	},
	{
		name: "spending_discipline_affirmation",
		applies: func(in ruleInput) bool {
			return in.currentSpending <= highSpendingLevel
		},
		message: func(in ruleInput) string {
			return "Your spending patterns suggest you're doing well managing your expenses. Keep it up!"
		},
	},
}

// generateRecommendations evaluates the rule table in order and collects
// every message whose condition holds.
func generateRecommendations(in ruleInput) []string {
	recommendations := make([]string, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if rule.applies(in) {
			recommendations = append(recommendations, rule.message(in))
		}
	}
	return recommendations
}

// formatAmount renders a plain number; currency symbols and locale grouping
// stay a client concern.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
