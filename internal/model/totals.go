package model

// CategoryTotals accumulates the financial summary for one category.
type CategoryTotals struct {
	Count   int
	Spend   float64
	Revenue float64
}

// AvgACOS computes the category's weighted average ACOS as a percentage.
// Returns zero when there is no revenue.
func (t CategoryTotals) AvgACOS() float64 {
	if t.Revenue > 0 {
		return t.Spend / t.Revenue * 100
	}
	return 0
}

// TotalsByCategory holds the per-category summary for a whole run. It is
// recomputed fresh each run and never persisted.
type TotalsByCategory map[Category]CategoryTotals
