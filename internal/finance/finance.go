// Package finance holds the pure aggregation functions over transaction
// and goal snapshots. Every function is deterministic in its input and
// recomputed per call; there is no cached or incremental state.
package finance

import (
	"sort"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/models"
)

const DateLayout = "2006-01-02"

// Summary are the headline figures shown on the dashboard cards.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
	SavingsRate   float64 `json:"savingsRate"`
}

// SignedAmount counts income positively and expense negatively.
func SignedAmount(tx models.Transaction) float64 {
	if tx.Kind == models.KindExpense {
		return -tx.Amount
	}
	return tx.Amount
}

// Summarize computes all-time totals, balance and savings rate.
// Savings rate is exactly 0 when there is no income.
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Kind {
		case models.KindIncome:
			s.TotalIncome += tx.Amount
		case models.KindExpense:
			s.TotalExpenses += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	if s.TotalIncome > 0 {
		s.SavingsRate = s.Balance / s.TotalIncome * 100
	}
	return s
}

// MonthStart returns the first calendar day of now's month at midnight.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MonthlyIncome sums income dated within [first of month, now].
func MonthlyIncome(txs []models.Transaction, now time.Time) float64 {
	return monthlyTotal(txs, models.KindIncome, now)
}

// MonthlyExpenses sums expenses dated within [first of month, now].
func MonthlyExpenses(txs []models.Transaction, now time.Time) float64 {
	return monthlyTotal(txs, models.KindExpense, now)
}

func monthlyTotal(txs []models.Transaction, kind string, now time.Time) float64 {
	start := MonthStart(now)
	var total float64
	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		d, err := time.ParseInLocation(DateLayout, tx.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(now) {
			continue
		}
		total += tx.Amount
	}
	return total
}

// CategorySlice is one group of the per-category breakdown.
type CategorySlice struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown groups transactions of one kind by category, in
// first-seen order. Percentages are of that kind's grand total and are 0
// for every slice when the total is 0.
func CategoryBreakdown(txs []models.Transaction, kind string) []CategorySlice {
	var order []string
	totals := make(map[string]*CategorySlice)

	var grand float64
	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		slice, ok := totals[tx.Category]
		if !ok {
			slice = &CategorySlice{Category: tx.Category}
			totals[tx.Category] = slice
			order = append(order, tx.Category)
		}
		slice.Total += tx.Amount
		slice.Count++
		grand += tx.Amount
	}

	out := make([]CategorySlice, 0, len(order))
	for _, category := range order {
		slice := *totals[category]
		if grand > 0 {
			slice.Percentage = slice.Total / grand * 100
		}
		out = append(out, slice)
	}
	return out
}

// TrendPoint is one month bucket of the income/expense series.
type TrendPoint struct {
	Month    string  `json:"month"` // e.g. "Jan 2024"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MonthlyTrend buckets transactions by calendar month in first-seen
// order. Callers wanting chronological buckets must sort by date first.
func MonthlyTrend(txs []models.Transaction) []TrendPoint {
	var order []string
	buckets := make(map[string]*TrendPoint)

	for _, tx := range txs {
		d, err := time.Parse(DateLayout, tx.Date)
		if err != nil {
			continue
		}
		key := d.Format("Jan 2006")
		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Month: key}
			buckets[key] = point
			order = append(order, key)
		}
		switch tx.Kind {
		case models.KindIncome:
			point.Income += tx.Amount
		case models.KindExpense:
			point.Expenses += tx.Amount
		}
	}

	out := make([]TrendPoint, 0, len(order))
	for _, key := range order {
		out = append(out, *buckets[key])
	}
	return out
}

// RunningBalance is the cumulative signed balance around one transaction
// in chronological order.
type RunningBalance struct {
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// RunningBalanceFor sorts the transactions ascending by date, ties kept
// in input order, and sums signed amounts strictly before the target.
// The second return is false when the id is not in the snapshot.
func RunningBalanceFor(txs []models.Transaction, transactionID string) (RunningBalance, bool) {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, erri := time.Parse(DateLayout, sorted[i].Date)
		dj, errj := time.Parse(DateLayout, sorted[j].Date)
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		return di.Before(dj)
	})

	var balance float64
	for _, tx := range sorted {
		if tx.TransactionID == transactionID {
			return RunningBalance{
				Before: balance,
				After:  balance + SignedAmount(tx),
			}, true
		}
		balance += SignedAmount(tx)
	}
	return RunningBalance{}, false
}

// GoalProgress is currentAmount over targetAmount as a percentage,
// clamped to [0, 100]. Target is positive by the data model; the zero
// guard stays anyway.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := current / target * 100
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// DaysRemaining counts whole days from now until the deadline, rounding
// up. Past deadlines yield zero or a negative count.
func DaysRemaining(deadline string, now time.Time) (int, error) {
	d, err := time.ParseInLocation(DateLayout, deadline, now.Location())
	if err != nil {
		return 0, err
	}
	diff := d.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days, nil
}
