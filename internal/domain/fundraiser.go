package domain

// Fundraiser is one fundraising campaign, keyed by Formname.
// AmountRaised only ever grows; donations may exceed the goal.
type Fundraiser struct {
	Name         string  `json:"name"`
	Goal         float64 `json:"goal"`
	AmountRaised float64 `json:"amount_raised"`
	Formname     string  `json:"formname"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
}

// PercentRaised returns progress toward the goal for display, clamped to [0, 100].
func (f Fundraiser) PercentRaised() int {
	if f.Goal <= 0 {
		return 0
	}
	pct := int(100 * f.AmountRaised / f.Goal)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
