// Package model defines the core domain models used throughout the application.
package model

// Ad represents a single advertised item from a campaign performance export.
// Every numeric field is guaranteed to be populated after normalization;
// missing or unparseable values default to zero.
type Ad struct {
	Name           string
	CampaignStatus string
	Budget         float64
	TargetACOS     float64
	Impressions    float64
	Clicks         float64
	Spend          float64
	CPC            float64
	CTR            float64
	CVR            float64
	Revenue        float64
	ACOS           float64
	ROAS           float64
	BudgetLossPct  float64
	RankingLossPct float64
}
