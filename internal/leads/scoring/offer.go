package scoring

import (
	"math"

	"realtool_backend/internal/leads/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Offer multipliers follow the wholesaler rule of thumb of roughly 70% of
// ARV minus repairs: 55% assumes the property needs work, 70% assumes good
// condition, 65% is the midpoint.
const (
	offerConservative = 0.55
	offerMidpoint     = 0.65
	offerAggressive   = 0.70
)

var currencyPrinter = message.NewPrinter(language.English)

// OfferRangeFor derives price points from the property value. Without a
// market or assessed value there is nothing to anchor on, so the range is
// flagged insufficient instead.
func OfferRangeFor(lead domain.Lead) domain.OfferRange {
	base := propertyValue(lead)
	if base == 0 {
		return domain.OfferRange{Insufficient: true}
	}

	return domain.OfferRange{
		Conservative: formatCurrency(base * offerConservative),
		Midpoint:     formatCurrency(base * offerMidpoint),
		Aggressive:   formatCurrency(base * offerAggressive),
		MarketValue:  formatCurrency(base),
	}
}

// formatCurrency rounds to the nearest dollar and adds thousands separators.
func formatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%d", int64(math.Round(amount)))
}
