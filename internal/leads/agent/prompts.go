package agent

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"realtool_backend/internal/leads/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const systemPrompt = "You are an expert real estate wholesaler specializing in analyzing skip trace data, " +
	"identifying motivated sellers, and structuring creative deals. Provide actionable cold-calling " +
	"scripts and negotiation strategies."

var moneyPrinter = message.NewPrinter(language.English)

// buildLeadPrompt embeds the lead's contact info, property attributes,
// financials, distress signals, score breakdown, and offer range into a
// single analysis request.
func buildLeadPrompt(lead domain.ScoredLead) string {
	var b strings.Builder

	b.WriteString("Analyze this skip trace lead and provide a complete action plan:\n\n")

	b.WriteString("PROPERTY & OWNER INFO:\n")
	fmt.Fprintf(&b, "- Owner: %s\n", lead.OwnerName)
	fmt.Fprintf(&b, "- Property: %s, %s, %s %s\n", lead.Address, lead.City, lead.State, lead.Zip)
	fmt.Fprintf(&b, "- Contact: %s | %s\n\n", orNA(lead.Phone1), orNA(lead.Email))

	b.WriteString("PROPERTY DETAILS:\n")
	fmt.Fprintf(&b, "- Type: %s\n", lead.PropertyType)
	fmt.Fprintf(&b, "- Year Built: %d (%s years old)\n", lead.YearBuilt, propertyAge(lead.YearBuilt))
	fmt.Fprintf(&b, "- Size: %dbd/%gba, %d sqft\n", lead.Bedrooms, lead.Bathrooms, lead.SquareFeet)
	fmt.Fprintf(&b, "- Lot: %g sqft\n\n", lead.LotSize)

	b.WriteString("FINANCIALS:\n")
	fmt.Fprintf(&b, "- Market Value: %s\n", money(lead.MarketValue))
	fmt.Fprintf(&b, "- Assessed Value: %s\n", money(lead.AssessedValue))
	fmt.Fprintf(&b, "- Last Sale: %s on %s\n", money(lead.LastSalePrice), orNA(lead.LastSaleDate))
	fmt.Fprintf(&b, "- Estimated Equity: %s\n", money(lead.EstimatedEquity))
	fmt.Fprintf(&b, "- Mortgage: %s\n", money(lead.EstimatedMortgage))
	fmt.Fprintf(&b, "- Tax Amount: %s\n", money(lead.TaxAmount))
	fmt.Fprintf(&b, "- Liens: %s\n\n", money(lead.LienAmount))

	b.WriteString("DISTRESS SIGNALS:\n")
	if len(lead.DistressIndicators) > 0 {
		b.WriteString(strings.Join(lead.DistressIndicators, ", "))
	} else {
		b.WriteString("None identified")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Tax Delinquent: %s\n", yesNo(lead.TaxDelinquent))
	fmt.Fprintf(&b, "- Foreclosure: %s\n", yesNo(lead.Foreclosure))
	fmt.Fprintf(&b, "- Vacant: %s\n", yesNo(lead.Vacant))
	fmt.Fprintf(&b, "- Absentee Owner: %s\n", yesNo(lead.AbsenteeOwner))
	fmt.Fprintf(&b, "- Out of State: %s\n", yesNo(lead.OutOfStateOwner))
	fmt.Fprintf(&b, "- Days on Market: %s\n\n", daysOnMarket(lead.DaysOnMarket))

	fmt.Fprintf(&b, "LEAD SCORE: %.1f/100 (%s)\n\n", lead.Score, lead.Priority)

	b.WriteString("SCORE BREAKDOWN:\n")
	b.WriteString(asJSON(lead.Breakdown))
	b.WriteString("\n\n")

	b.WriteString("ESTIMATED OFFER RANGE:\n")
	b.WriteString(asJSON(lead.EstimatedOffer))
	b.WriteString("\n\n")

	b.WriteString(`Please provide:
1. **Opening Script** - First 30 seconds of the cold call
2. **Pain Point Questions** - What to ask to uncover motivation
3. **Deal Structure** - Best creative financing approach (subject-to, seller financing, lease option, etc.)
4. **Objection Handlers** - How to overcome common objections
5. **Offer Strategy** - Specific offer recommendation with reasoning
6. **Follow-up Plan** - If they don't bite immediately
7. **Red Flags** - Any concerns about this deal`)

	return b.String()
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "YES"
	}
	return "No"
}

func money(amount float64) string {
	return moneyPrinter.Sprintf("$%d", int64(math.Round(amount)))
}

func propertyAge(yearBuilt int) string {
	if yearBuilt == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", time.Now().Year()-yearBuilt)
}

func daysOnMarket(days int) string {
	if days == 0 {
		return "Not listed"
	}
	return fmt.Sprintf("%d", days)
}

func asJSON(value interface{}) string {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
