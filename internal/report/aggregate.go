// Package report computes per-category financial totals from verdicts and
// assembles the final strategic report document.
package report

import (
	"sort"

	"github.com/dlautopecas/adpulse/internal/model"
)

// Aggregate folds every verdict into its category's totals. All three known
// categories are present in the result even when empty. A verdict with an
// unrecognized category is folded into ADJUST. Folding uses the verdict's
// own spend and revenue, so sums over the totals always equal sums over the
// verdicts.
func Aggregate(verdicts []model.Verdict) model.TotalsByCategory {
	totals := make(model.TotalsByCategory, len(model.Categories()))
	for _, cat := range model.Categories() {
		totals[cat] = model.CategoryTotals{}
	}

	for _, v := range verdicts {
		cat := v.Category
		if !cat.Valid() {
			cat = model.CategoryAdjust
		}

		t := totals[cat]
		t.Count++
		t.Spend += v.Spend
		t.Revenue += v.Revenue
		totals[cat] = t
	}

	return totals
}

// SortVerdicts orders verdicts by category priority (SCALE, ADJUST, PAUSE,
// then unknown). The sort is stable: ties keep their accumulation order.
func SortVerdicts(verdicts []model.Verdict) []model.Verdict {
	sorted := append([]model.Verdict(nil), verdicts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Category.Priority() < sorted[j].Category.Priority()
	})
	return sorted
}
