package ingest

import (
	"strconv"
	"strings"

	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/model"
)

const (
	// headerSentinel is the vendor label of the ad name column. The row
	// containing it is the header row.
	headerSentinel = "Nome"

	// totalSentinel marks the vendor's aggregate row, which is never a
	// real ad.
	totalSentinel = "Total"

	// headerScanLimit bounds how many leading rows are searched for the
	// header. Exports with headers beyond this window are rejected.
	headerScanLimit = 10
)

// canonical field names used as keys during column mapping.
const (
	fieldName           = "name"
	fieldCampaignStatus = "campaign_status"
	fieldBudget         = "budget"
	fieldTargetACOS     = "target_acos"
	fieldImpressions    = "impressions"
	fieldClicks         = "clicks"
	fieldSpend          = "spend"
	fieldCPC            = "cpc"
	fieldCTR            = "ctr"
	fieldCVR            = "cvr"
	fieldRevenue        = "revenue"
	fieldACOS           = "acos"
	fieldROAS           = "roas"
	fieldBudgetLossPct  = "budget_loss_pct"
	fieldRankingLossPct = "ranking_loss_pct"
)

// columnMapping translates vendor header labels to canonical field names.
// Labels not present here are dropped.
var columnMapping = map[string]string{
	"Nome":                            fieldName,
	"Status":                          fieldCampaignStatus,
	"Orçamento":                       fieldBudget,
	"ACOS Objetivo":                   fieldTargetACOS,
	"Impressões":                      fieldImpressions,
	"Cliques":                         fieldClicks,
	"Investimento\n(Moeda local)":     fieldSpend,
	"CPC \n(Custo por clique)":        fieldCPC,
	"CTR\n(Click through rate)":       fieldCTR,
	"CVR\n(Conversion rate)":          fieldCVR,
	"Receita\n(Moeda local)":          fieldRevenue,
	"ACOS\n(Investimento / Receitas)": fieldACOS,
	"ROAS\n(Receitas / Investimento)": fieldROAS,
	"% de impressões perdidas por orçamento":     fieldBudgetLossPct,
	"% de impressões perdidas por classificação": fieldRankingLossPct,
}

// Normalize converts a raw cell grid into canonical ad rows. It fails with
// common.ErrHeaderNotFound when no header row appears within the scan
// window. Row order is preserved; rows without a name and the vendor's
// "Total" aggregate row are dropped.
func Normalize(rows [][]string) ([]model.Ad, error) {
	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, common.NewUserError(
			"could not locate the header row with the 'Nome' column; the Mercado Livre export format may have changed",
			common.ErrHeaderNotFound,
		)
	}

	columns := mapColumns(rows[headerIdx])

	ads := make([]model.Ad, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		ad, ok := buildAd(row, columns)
		if !ok {
			continue
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

// findHeaderRow scans the leading rows for a cell equal to the header
// sentinel and returns the first matching row index, or -1.
func findHeaderRow(rows [][]string) int {
	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) == headerSentinel {
				return i
			}
		}
	}
	return -1
}

// mapColumns resolves the header row into a canonical-field → column-index
// table. Duplicate labels are resolved first-wins.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(columnMapping))
	for idx, label := range header {
		field, ok := columnMapping[label]
		if !ok {
			continue
		}
		if _, claimed := columns[field]; claimed {
			continue
		}
		columns[field] = idx
	}
	return columns
}

// buildAd assembles one canonical row. It returns false for rows that must
// be dropped: missing name or the vendor's aggregate row.
func buildAd(row []string, columns map[string]int) (model.Ad, bool) {
	name := strings.TrimSpace(cellAt(row, columns, fieldName))
	if name == "" || name == totalSentinel {
		return model.Ad{}, false
	}

	return model.Ad{
		Name:           name,
		CampaignStatus: strings.TrimSpace(cellAt(row, columns, fieldCampaignStatus)),
		Budget:         CoerceNumeric(cellAt(row, columns, fieldBudget)),
		TargetACOS:     CoerceNumeric(cellAt(row, columns, fieldTargetACOS)),
		Impressions:    CoerceNumeric(cellAt(row, columns, fieldImpressions)),
		Clicks:         CoerceNumeric(cellAt(row, columns, fieldClicks)),
		Spend:          CoerceNumeric(cellAt(row, columns, fieldSpend)),
		CPC:            CoerceNumeric(cellAt(row, columns, fieldCPC)),
		CTR:            CoerceNumeric(cellAt(row, columns, fieldCTR)),
		CVR:            CoerceNumeric(cellAt(row, columns, fieldCVR)),
		Revenue:        CoerceNumeric(cellAt(row, columns, fieldRevenue)),
		ACOS:           CoerceNumeric(cellAt(row, columns, fieldACOS)),
		ROAS:           CoerceNumeric(cellAt(row, columns, fieldROAS)),
		BudgetLossPct:  CoerceNumeric(cellAt(row, columns, fieldBudgetLossPct)),
		RankingLossPct: CoerceNumeric(cellAt(row, columns, fieldRankingLossPct)),
	}, true
}

// cellAt returns the cell for a canonical field, or "" when the column is
// unmapped or the row is short.
func cellAt(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// CoerceNumeric parses locale-formatted numeric text: decimal commas become
// decimal points and percent signs are stripped before parsing. Unparseable
// values default to zero. The transformation is idempotent on already-clean
// numbers.
func CoerceNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
