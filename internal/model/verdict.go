package model

// Verdict represents one ad's analysis result as reported by the classifier.
// Revenue, Spend and ACOS are carried exactly as the classifier returned
// them and are not reconciled against the source row.
type Verdict struct {
	AdName   string
	Category Category
	Reason   string
	Action   string
	Revenue  float64
	Spend    float64
	ACOS     float64
}

// DerivedACOS computes the verdict's own spend-to-revenue ratio as a
// percentage. Returns zero when there is no revenue.
func (v Verdict) DerivedACOS() float64 {
	if v.Revenue > 0 {
		return v.Spend / v.Revenue * 100
	}
	return 0
}
