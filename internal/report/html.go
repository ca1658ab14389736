package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/model"
)

// documentTemplate renders the strategic performance report: a title block,
// the executive summary table and one card per verdict, grouped by category
// with a section heading whenever the category changes.
var documentTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR"><head><meta charset="UTF-8">
<style>
body {font-family: Arial, sans-serif; font-size: 15px; padding: 40px; color: #333;}
.card {margin-bottom: 25px; padding: 22px; border-radius: 10px; box-shadow: 0 4px 8px rgba(0,0,0,0.1); border-left: 8px solid #ccc; break-inside: avoid;}
.card-SCALE { background-color: #f0fff0; border-left-color: #2e7d32; }
.card-ADJUST { background-color: #fffbeb; border-left-color: #f9a825; }
.card-PAUSE { background-color: #fff0f0; border-left-color: #c62828; }
.badge {display: inline-block; padding: 6px 14px; border-radius: 50px; font-size: 14px; font-weight: bold; color: #fff; margin-bottom: 15px;}
.badge-SCALE { background-color: #2e7d32; }
.badge-ADJUST { background-color: #f9a825; }
.badge-PAUSE { background-color: #c62828; }
h1 { color: #004aad; text-align: center; }
h2 { color: #004aad; border-bottom: 2px solid #004aad; padding-bottom: 10px; margin-top: 40px;}
table {width: 100%; border-collapse: collapse; margin-top: 20px;}
th, td {border: 1px solid #ddd; padding: 12px; text-align: left;}
th {background-color: #f2f2f2; font-weight: bold;}
.metric-line { background-color: #f8f9fa; padding: 10px; border-radius: 5px; margin-top: 10px; border: 1px solid #e9ecef; }
</style></head><body>
<h1>Strategic Performance Report</h1>
<p style="text-align: center;"><strong>Date:</strong> {{.Date}}</p>
<h2>Executive Financial Summary</h2>
<table><tr><th>Category</th><th>Ads</th><th>Total Spend</th><th>Total Revenue</th><th>Avg ACOS</th></tr>
{{- range .Summary}}
<tr><td><span class="badge badge-{{.Category}}">{{.Category}}</span></td><td>{{.Count}}</td><td>R$ {{.Spend}}</td><td>R$ {{.Revenue}}</td><td>{{.AvgACOS}}%</td></tr>
{{- end}}
</table>
{{- range .Cards}}
{{- if .NewSection}}
<h2>{{.Category}}</h2>
{{- end}}
<div class="card card-{{.Category}}">
<div class="badge badge-{{.Category}}">{{.Category}}</div>
<p><strong>Ad:</strong> {{.AdName}}</p>
<div class="metric-line">Revenue: <strong>R$ {{.Revenue}}</strong> | Spend: <strong>R$ {{.Spend}}</strong> | ACOS: <strong>{{.ACOS}}%</strong></div>
<p><strong>Reason:</strong> {{.Reason}}</p>
<p><strong>Recommended action:</strong> {{.Action}}</p>
</div>
{{- end}}
</body></html>
`))

type summaryRow struct {
	Category model.Category
	Count    int
	Spend    string
	Revenue  string
	AvgACOS  string
}

type cardView struct {
	Category   model.Category
	AdName     string
	Reason     string
	Action     string
	Revenue    string
	Spend      string
	ACOS       string
	NewSection bool
}

type documentData struct {
	Date    string
	Summary []summaryRow
	Cards   []cardView
}

// RenderHTML assembles the report document for the given verdicts. The
// verdict list is sorted by category priority before rendering. An empty
// verdict list yields common.ErrNoVerdicts instead of a degenerate document.
func RenderHTML(verdicts []model.Verdict, totals model.TotalsByCategory, date time.Time) (string, error) {
	if len(verdicts) == 0 {
		return "", common.ErrNoVerdicts
	}

	data := documentData{
		Date: date.Format("02/01/2006"),
	}

	for _, cat := range model.Categories() {
		t := totals[cat]
		data.Summary = append(data.Summary, summaryRow{
			Category: cat,
			Count:    t.Count,
			Spend:    money(t.Spend),
			Revenue:  money(t.Revenue),
			AvgACOS:  money(t.AvgACOS()),
		})
	}

	var current model.Category
	for i, v := range SortVerdicts(verdicts) {
		data.Cards = append(data.Cards, cardView{
			Category:   v.Category,
			AdName:     v.AdName,
			Reason:     v.Reason,
			Action:     v.Action,
			Revenue:    money(v.Revenue),
			Spend:      money(v.Spend),
			ACOS:       money(v.DerivedACOS()),
			NewSection: i == 0 || v.Category != current,
		})
		current = v.Category
	}

	var buf strings.Builder
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return buf.String(), nil
}

// money formats a monetary or percentage value to two decimal places.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
