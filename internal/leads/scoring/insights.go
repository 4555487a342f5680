package scoring

import (
	"fmt"
	"strings"

	"realtool_backend/internal/leads/domain"
)

// generateInsights assembles human-readable observations about the lead.
// Conditions are independent, so every matching template is emitted, in the
// check order below.
func (e *Engine) generateInsights(lead domain.Lead) []string {
	var insights []string

	if len(lead.DistressIndicators) > 0 {
		insights = append(insights, fmt.Sprintf("DISTRESS SIGNALS: %s", strings.Join(lead.DistressIndicators, ", ")))
	}

	if lead.Foreclosure || lead.PreForeclosure {
		insights = append(insights, "FORECLOSURE: This is a time-sensitive opportunity, act fast")
	}

	if lead.TaxDelinquent {
		insights = append(insights, "TAX DELINQUENT: Owner may be motivated to avoid tax sale")
	}

	if lead.Vacant {
		insights = append(insights, "VACANT PROPERTY: No tenant income, owner may want out")
	}

	// Equity percentage is computed against market value only; assessed
	// value is not a substitute here.
	equityPercent := 0.0
	if lead.MarketValue != 0 {
		equityPercent = (lead.EstimatedEquity / lead.MarketValue) * 100
	}
	if equityPercent >= 70 {
		insights = append(insights, fmt.Sprintf("HIGH EQUITY (%.0f%%): Great for subject-to or seller financing", equityPercent))
	} else if equityPercent < 0 {
		insights = append(insights, "UNDERWATER: Owner may be desperate, consider short sale")
	}

	if lead.AbsenteeOwner || lead.OutOfStateOwner {
		insights = append(insights, "REMOTE OWNER: Likely tired of managing from distance")
	}

	if lead.DaysOnMarket > 180 {
		insights = append(insights, fmt.Sprintf("STALE LISTING (%d days): Seller getting desperate", lead.DaysOnMarket))
	}

	if lead.YearBuilt != 0 {
		age := e.currentYear - lead.YearBuilt
		if age >= 50 {
			insights = append(insights, fmt.Sprintf("OLDER PROPERTY (%d years): Likely needs updates, position as solution", age))
		}
	}

	if lead.Phone1 != "" && lead.Email != "" {
		insights = append(insights, "MULTI-CHANNEL: Use both phone and email for outreach")
	} else if lead.Phone1 == "" && lead.Email == "" {
		insights = append(insights, "LIMITED CONTACT INFO: May need additional skip tracing")
	}

	return insights
}

// recommendedActions maps the aggregate score onto a fixed action plan.
// Exactly one band applies.
func recommendedActions(score float64) []string {
	switch {
	case score >= 80:
		return []string{
			"IMMEDIATE CALL - Top priority lead",
			"Prepare cash offer or creative financing options",
			"Research comps and ARV before calling",
		}
	case score >= 65:
		return []string{
			"Call within 24-48 hours",
			"Build rapport and uncover pain points",
			"Follow up with value proposition email",
		}
	case score >= 50:
		return []string{
			"Add to regular calling rotation",
			"Send introductory letter or postcard",
			"Monitor for status changes",
		}
	default:
		return []string{
			"Add to long-term nurture campaign",
			"Check back quarterly for changes",
		}
	}
}
