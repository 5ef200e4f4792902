package analytics

import (
	"FinTrack/internal/entity"
	"fmt"
	"math"
	"time"
)

// NoDataCategory is returned by MostSpentCategory for an empty breakdown.
const NoDataCategory = "No data"

const dayKeyLayout = "2006-01-02"

// The functions below are pure: they operate only on the supplied snapshot
// and reference date, never on wall-clock time or hidden state.

func TotalByType(transactions []entity.Transaction, transactionType entity.TransactionType) float64 {
	var total float64
	for _, transaction := range transactions {
		if transaction.Type == transactionType {
			total += transaction.Amount
		}
	}
	return total
}

// CategoryBreakdown groups expenses by category. Entries appear in the order
// the category is first encountered in the snapshot.
func CategoryBreakdown(transactions []entity.Transaction) []CategoryAmount {
	return breakdownByType(transactions, entity.TransactionTypeExpense)
}

// IncomeBySource groups incomes by their source label.
func IncomeBySource(transactions []entity.Transaction) []CategoryAmount {
	return breakdownByType(transactions, entity.TransactionTypeIncome)
}

func breakdownByType(transactions []entity.Transaction, transactionType entity.TransactionType) []CategoryAmount {
	var entries []CategoryAmount
	index := make(map[string]int)

	for _, transaction := range transactions {
		if transaction.Type != transactionType {
			continue
		}

		if i, ok := index[transaction.Category]; ok {
			entries[i].Amount += transaction.Amount
			continue
		}

		index[transaction.Category] = len(entries)
		entries = append(entries, CategoryAmount{
			Name:   transaction.Category,
			Amount: transaction.Amount,
			Color:  CategoryColor(transaction.Category),
		})
	}

	return entries
}

// MostSpentCategory picks the largest entry. Ties resolve to the
// lexicographically smallest name so the result is deterministic.
func MostSpentCategory(breakdown []CategoryAmount) string {
	if len(breakdown) == 0 {
		return NoDataCategory
	}

	top := breakdown[0]
	for _, entry := range breakdown[1:] {
		if entry.Amount > top.Amount || (entry.Amount == top.Amount && entry.Name < top.Name) {
			top = entry
		}
	}

	return top.Name
}

// SavingsRate is the saved share of income as a rounded percentage. Zero
// income yields 0, not a division error.
func SavingsRate(totalIncome, totalExpenses float64) int {
	if totalIncome == 0 {
		return 0
	}
	return int(math.Round((totalIncome - totalExpenses) / totalIncome * 100))
}

// AverageDailySpend averages per-day expense sums over the days that saw at
// least one expense.
func AverageDailySpend(transactions []entity.Transaction) float64 {
	dailySpends := make(map[string]float64)
	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		dailySpends[transaction.Date.Format(dayKeyLayout)] += transaction.Amount
	}

	if len(dailySpends) == 0 {
		return 0
	}

	var total float64
	for _, amount := range dailySpends {
		total += amount
	}

	return total / float64(len(dailySpends))
}

// MonthlyTrend is the percentage change against the previous month, one
// decimal. A zero previous month substitutes 1 as the denominator; this is
// the product's historical behavior, not a true percentage-from-zero.
func MonthlyTrend(current, previous float64) float64 {
	denominator := previous
	if denominator == 0 {
		denominator = 1
	}
	return math.Round((current-previous)/denominator*100*10) / 10
}

// MonthlyComparison totals expenses for the reference month and the month
// before it, handling the December to January rollover.
func MonthlyComparison(transactions []entity.Transaction, reference time.Time) MonthlyComparisonResponse {
	currentYear, currentMonth, _ := reference.Date()

	previousMonth := currentMonth - 1
	previousYear := currentYear
	if currentMonth == time.January {
		previousMonth = time.December
		previousYear = currentYear - 1
	}

	var previous, current float64
	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}

		year, month, _ := transaction.Date.Date()
		switch {
		case year == currentYear && month == currentMonth:
			current += transaction.Amount
		case year == previousYear && month == previousMonth:
			previous += transaction.Amount
		}
	}

	return MonthlyComparisonResponse{
		Previous:   previous,
		Current:    current,
		Difference: current - previous,
		Trend:      MonthlyTrend(current, previous),
	}
}

// DailySeries is one expense total per calendar day for the last days days
// ending at the reference date inclusive.
func DailySeries(transactions []entity.Transaction, days int, reference time.Time) []DailyPoint {
	totals := make(map[string]float64)
	for _, transaction := range transactions {
		if transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		totals[transaction.Date.Format(dayKeyLayout)] += transaction.Amount
	}

	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i).Format(dayKeyLayout)
		points = append(points, DailyPoint{
			Date:  day,
			Total: totals[day],
		})
	}

	return points
}

// WeeklySeries buckets the last five weeks of expenses ending at the
// reference date, mirroring the weekly bar chart of the client.
func WeeklySeries(transactions []entity.Transaction, reference time.Time) []WeeklyPoint {
	boundaries := []time.Time{
		reference.AddDate(0, 0, -28),
		reference.AddDate(0, 0, -21),
		reference.AddDate(0, 0, -14),
		reference.AddDate(0, 0, -7),
		reference,
	}

	points := make([]WeeklyPoint, 0, len(boundaries))
	for i, upper := range boundaries {
		lower := reference.AddDate(0, -1, 0)
		if i > 0 {
			lower = boundaries[i-1]
		}

		var total float64
		for _, transaction := range transactions {
			if transaction.Type != entity.TransactionTypeExpense {
				continue
			}
			if !transaction.Date.Before(lower) && !transaction.Date.After(upper) {
				total += transaction.Amount
			}
		}

		points = append(points, WeeklyPoint{
			Label: fmt.Sprintf("W%d", i+1),
			Total: total,
		})
	}

	return points
}
