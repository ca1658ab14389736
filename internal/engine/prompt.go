package engine

import (
	"fmt"
	"strings"

	"github.com/dlautopecas/adpulse/internal/model"
)

// buildPrompt synthesizes the analysis instruction payload for one chunk:
// role framing, the classification rules, the required JSON contract and
// one formatted data line per ad.
func buildPrompt(ads []model.Ad) string {
	var data strings.Builder
	for _, ad := range ads {
		data.WriteString(formatAdLine(ad))
		data.WriteString("\n")
	}

	return fmt.Sprintf(`You are a senior Performance Director specialized in Mercado Livre Ads. Your analysis must be strategic, direct and focused on financial results for the business owner.

Analyze the ad data below. Provide a complete analysis for EACH one.

Analysis rules:
1. ACOS is king: the most important metric is ACOS. Compare the actual ACOS with the target ACOS.
2. Profitability: if ACOS <= target ACOS the campaign is profitable. If ACOS > target ACOS it is not.
3. Budget starvation: if the campaign is profitable and the budget loss is high (>50%%), the clear action is to increase the budget.
4. Ranking problem: if the ranking loss is high (>50%%), the problem is the listing itself (price, photos, title). The action is to optimize the listing.
5. CTR vs CVR: a high CTR with a low CVR means the ad attracts clicks but the product page does not convert (price, shipping, description).

Response format:
Your response MUST be a single JSON object with one top-level key "analyses" holding a list of objects. Each object must have exactly these keys:
- ad: (string) the exact ad name.
- category: (string) one of "SCALE" (profitable with potential), "ADJUST" (problems to fix) or "PAUSE" (clear loss with no obvious potential).
- reason: (string) the main reason for the category, citing the key metrics.
- action: (string) one practical, specific action.
- revenue: (number) the ad's revenue.
- spend: (number) the ad's spend.
- acos: (number) the ad's ACOS.

Data to analyze:
---
%s`, data.String())
}

// formatAdLine renders one ad as a prompt data line. Counts and the target
// and loss percentages are shown as integers, rates and money to two
// decimal places.
func formatAdLine(ad model.Ad) string {
	return fmt.Sprintf("- Ad: %s | Impressions: %d | Clicks: %d | CTR: %.2f%% | CVR: %.2f%% | Spend: R$%.2f | Revenue: R$%.2f | ACOS: %.2f%% | Target ACOS: %d%% | Budget Loss: %d%% | Ranking Loss: %d%%",
		ad.Name,
		int(ad.Impressions),
		int(ad.Clicks),
		ad.CTR,
		ad.CVR,
		ad.Spend,
		ad.Revenue,
		ad.ACOS,
		int(ad.TargetACOS),
		int(ad.BudgetLossPct),
		int(ad.RankingLossPct))
}
