package ingest

import "realtool_backend/internal/leads/domain"

// Distress indicator labels.
const (
	IndicatorTaxDelinquent   = "Tax Delinquent"
	IndicatorForeclosure     = "Foreclosure"
	IndicatorPreForeclosure  = "Pre-Foreclosure"
	IndicatorVacant          = "Vacant"
	IndicatorAbsenteeOwner   = "Absentee Owner"
	IndicatorOutOfStateOwner = "Out of State Owner"
	IndicatorHasLiens        = "Has Liens"
	IndicatorStaleListing    = "Stale Listing"
	IndicatorOlderProperty   = "Older Property"
	IndicatorUnderwater      = "Underwater"
)

// DistressIndicators derives motivation signals from a raw row. Each rule is
// evaluated independently against the row's primary column, so a record can
// carry any combination of labels. The check order fixes the output sequence.
func DistressIndicators(row domain.RawRow) []string {
	var indicators []string

	if isYes(row.Get("tax_delinquent")) {
		indicators = append(indicators, IndicatorTaxDelinquent)
	}
	if isYes(row.Get("foreclosure")) {
		indicators = append(indicators, IndicatorForeclosure)
	}
	if isYes(row.Get("pre_foreclosure")) {
		indicators = append(indicators, IndicatorPreForeclosure)
	}
	if isYes(row.Get("vacant")) {
		indicators = append(indicators, IndicatorVacant)
	}
	if isYes(row.Get("absentee_owner")) {
		indicators = append(indicators, IndicatorAbsenteeOwner)
	}
	if isYes(row.Get("out_of_state")) {
		indicators = append(indicators, IndicatorOutOfStateOwner)
	}
	if parseFloat(row.Get("lien_amount")) > 0 {
		indicators = append(indicators, IndicatorHasLiens)
	}
	if parseInt(row.Get("days_on_market")) > 180 {
		indicators = append(indicators, IndicatorStaleListing)
	}

	yearBuilt := parseInt(row.Get("year_built"))
	if yearBuilt > 0 && yearBuilt < 1980 {
		indicators = append(indicators, IndicatorOlderProperty)
	}

	equity := parseFloat(row.Get("estimated_equity"))
	value := parseFloat(row.Get("market_value"))
	if value == 0 {
		value = parseFloat(row.Get("assessed_value"))
	}
	if value > 0 && equity < 0 {
		indicators = append(indicators, IndicatorUnderwater)
	}

	return indicators
}
