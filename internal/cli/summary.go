package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dlautopecas/adpulse/internal/model"
)

// PrintSummary writes the per-category totals table to w, styled for the
// terminal.
func PrintSummary(w io.Writer, totals model.TotalsByCategory) {
	fmt.Fprintln(w, TitleStyle.Render("Executive Financial Summary"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, BoldStyle.Render("CATEGORY")+"\tADS\tSPEND\tREVENUE\tAVG ACOS")

	for _, cat := range model.Categories() {
		t := totals[cat]
		fmt.Fprintf(tw, "%s\t%d\tR$ %.2f\tR$ %.2f\t%.2f%%\n",
			CategoryStyle(string(cat)).Render(string(cat)),
			t.Count,
			t.Spend,
			t.Revenue,
			t.AvgACOS())
	}

	_ = tw.Flush()
}

// PrintAds writes a preview table of normalized ad rows to w.
func PrintAds(w io.Writer, ads []model.Ad) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Loaded %d ads", len(ads))))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tSPEND\tREVENUE\tACOS\tTARGET\tBUDGET LOSS\tRANKING LOSS")

	for _, ad := range ads {
		fmt.Fprintf(tw, "%s\t%s\tR$ %.2f\tR$ %.2f\t%.2f%%\t%d%%\t%d%%\t%d%%\n",
			ad.Name,
			ad.CampaignStatus,
			ad.Spend,
			ad.Revenue,
			ad.ACOS,
			int(ad.TargetACOS),
			int(ad.BudgetLossPct),
			int(ad.RankingLossPct))
	}

	_ = tw.Flush()
}
