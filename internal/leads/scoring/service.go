// Package scoring computes the weighted "likely to sell" score for
// normalized skip trace leads, along with insights, recommended actions,
// and an estimated offer range per lead.
package scoring

import (
	"math"
	"sort"
	"time"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/ingest"
	"realtool_backend/platform/config"
)

// Breakdown keys for the seven scoring factors.
const (
	FactorDistress       = "distress_indicators"
	FactorEquity         = "equity"
	FactorPropertyAge    = "property_age"
	FactorTaxDelinquency = "tax_delinquency"
	FactorOwnershipType  = "ownership_type"
	FactorTimeOnMarket   = "time_on_market"
	FactorContactability = "contactability"
)

// Priority tier labels.
const (
	PriorityHot    = "HOT"
	PriorityWarm   = "WARM"
	PriorityMedium = "MEDIUM"
	PriorityCold   = "COLD"
	PriorityIce    = "ICE"
)

// Weights sets the relative influence of each factor. Values are magnitudes,
// not percentages: the aggregate is Σ(sub-score/100 × weight), so weights
// that do not sum to 100 produce aggregates outside the nominal 0-100 range.
// That is accepted behavior and nothing downstream clamps it.
type Weights struct {
	Distress       float64
	Equity         float64
	PropertyAge    float64
	TaxDelinquency float64
	OwnershipType  float64
	TimeOnMarket   float64
	Contactability float64
}

// DefaultWeights returns the standard profile, summing to 100.
func DefaultWeights() Weights {
	return Weights{
		Distress:       30,
		Equity:         20,
		PropertyAge:    10,
		TaxDelinquency: 15,
		OwnershipType:  10,
		TimeOnMarket:   10,
		Contactability: 5,
	}
}

// WeightsFromConfig builds a weight profile from application configuration.
func WeightsFromConfig(cfg config.ScoringConfig) Weights {
	return Weights{
		Distress:       cfg.GetWeightDistress(),
		Equity:         cfg.GetWeightEquity(),
		PropertyAge:    cfg.GetWeightPropertyAge(),
		TaxDelinquency: cfg.GetWeightTaxDelinquency(),
		OwnershipType:  cfg.GetWeightOwnershipType(),
		TimeOnMarket:   cfg.GetWeightTimeOnMarket(),
		Contactability: cfg.GetWeightContactability(),
	}
}

// Engine scores leads. It holds no state besides its weight profile, so a
// single engine can score any number of batches.
type Engine struct {
	weights Weights

	// currentYear anchors property age computation for deterministic tests.
	currentYear int
}

// NewEngine creates a scoring engine with the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{
		weights:     weights,
		currentYear: time.Now().Year(),
	}
}

// ScoreAll scores every lead and returns the list sorted descending by
// aggregate score. The sort is stable so equal scores keep source order.
func (e *Engine) ScoreAll(leads []domain.Lead) []domain.ScoredLead {
	scored := make([]domain.ScoredLead, 0, len(leads))
	for _, lead := range leads {
		scored = append(scored, e.Score(lead))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Score computes one lead's sub-scores, aggregate, and derived annotations.
func (e *Engine) Score(lead domain.Lead) domain.ScoredLead {
	subScores := map[string]float64{
		FactorDistress:       scoreDistressIndicators(lead.DistressIndicators),
		FactorEquity:         scoreEquity(lead.EstimatedEquity, propertyValue(lead)),
		FactorPropertyAge:    e.scorePropertyAge(lead.YearBuilt),
		FactorTaxDelinquency: scoreTaxDelinquency(lead.TaxDelinquent, lead.TaxAmount),
		FactorOwnershipType:  scoreOwnershipType(lead),
		FactorTimeOnMarket:   scoreTimeOnMarket(lead.DaysOnMarket, lead.Listed),
		FactorContactability: scoreContactability(lead),
	}

	weightFor := map[string]float64{
		FactorDistress:       e.weights.Distress,
		FactorEquity:         e.weights.Equity,
		FactorPropertyAge:    e.weights.PropertyAge,
		FactorTaxDelinquency: e.weights.TaxDelinquency,
		FactorOwnershipType:  e.weights.OwnershipType,
		FactorTimeOnMarket:   e.weights.TimeOnMarket,
		FactorContactability: e.weights.Contactability,
	}

	total := 0.0
	breakdown := make(map[string]domain.FactorScore, len(subScores))
	for key, subScore := range subScores {
		weighted := (subScore / 100) * weightFor[key]
		total += weighted
		breakdown[key] = domain.FactorScore{
			Score:    subScore,
			Weight:   weightFor[key],
			Weighted: math.Round(weighted*100) / 100,
		}
	}

	return domain.ScoredLead{
		Lead:               lead,
		Score:              total,
		Breakdown:          breakdown,
		Priority:           PriorityFor(total),
		Insights:           e.generateInsights(lead),
		RecommendedActions: recommendedActions(total),
		EstimatedOffer:     OfferRangeFor(lead),
	}
}

// PriorityFor maps an aggregate score onto its tier. Boundaries are
// inclusive lower bounds.
func PriorityFor(score float64) string {
	switch {
	case score >= 80:
		return PriorityHot
	case score >= 65:
		return PriorityWarm
	case score >= 50:
		return PriorityMedium
	case score >= 35:
		return PriorityCold
	default:
		return PriorityIce
	}
}

// propertyValue is the market value with assessed value as fallback.
func propertyValue(lead domain.Lead) float64 {
	if lead.MarketValue != 0 {
		return lead.MarketValue
	}
	return lead.AssessedValue
}

// scoreDistressIndicators buckets indicators by severity. Foreclosure-grade
// signals contribute 25 each, softer motivation signals 15, anything else 10.
// A lead with no indicators scores 20, not the 50 the other factors use for
// missing data; that asymmetry is long-standing observed behavior and is
// covered by a test so it cannot be normalized away silently.
func scoreDistressIndicators(indicators []string) float64 {
	if len(indicators) == 0 {
		return 20
	}

	high := map[string]bool{
		ingest.IndicatorForeclosure:    true,
		ingest.IndicatorPreForeclosure: true,
		ingest.IndicatorTaxDelinquent:  true,
	}
	medium := map[string]bool{
		ingest.IndicatorVacant:        true,
		ingest.IndicatorAbsenteeOwner: true,
		ingest.IndicatorHasLiens:      true,
		ingest.IndicatorStaleListing:  true,
	}

	score := 0.0
	for _, indicator := range indicators {
		switch {
		case high[indicator]:
			score += 25
		case medium[indicator]:
			score += 15
		default:
			score += 10
		}
	}

	return math.Min(100, score)
}

// scoreEquity evaluates the equity-to-value position. Both extremes are
// attractive: underwater owners are motivated, free-and-clear owners suit
// creative financing.
func scoreEquity(equity, value float64) float64 {
	if equity == 0 || value == 0 {
		return 50
	}

	equityPercent := (equity / value) * 100

	switch {
	case equityPercent < 0:
		return 95
	case equityPercent < 10:
		return 85
	case equityPercent < 20:
		return 70
	case equityPercent < 30:
		return 60
	case equityPercent < 50:
		return 50
	case equityPercent < 70:
		return 70
	default:
		return 100
	}
}

// scorePropertyAge favors older properties, which more often need work.
func (e *Engine) scorePropertyAge(yearBuilt int) float64 {
	if yearBuilt == 0 {
		return 50
	}

	age := e.currentYear - yearBuilt

	switch {
	case age >= 80:
		return 95
	case age >= 60:
		return 85
	case age >= 40:
		return 75
	case age >= 30:
		return 65
	case age >= 20:
		return 50
	case age >= 10:
		return 40
	default:
		return 30
	}
}

// scoreTaxDelinquency tiers by the outstanding amount. Larger unpaid tax
// bills mean more urgent motivation.
func scoreTaxDelinquency(delinquent bool, taxAmount float64) float64 {
	if !delinquent {
		return 30
	}

	switch {
	case taxAmount > 10000:
		return 100
	case taxAmount > 5000:
		return 95
	case taxAmount > 2000:
		return 90
	default:
		return 85
	}
}

// scoreOwnershipType starts at 50 and adds for each detachment signal.
func scoreOwnershipType(lead domain.Lead) float64 {
	score := 50.0

	if lead.AbsenteeOwner {
		score += 20
	}
	if lead.OutOfStateOwner {
		score += 15
	}
	if !lead.OwnerOccupied {
		score += 10
	}
	if lead.Vacant {
		score += 20
	}

	return math.Min(100, score)
}

// scoreTimeOnMarket tiers by listing duration. Unlisted properties sit at
// the neutral midpoint.
func scoreTimeOnMarket(daysOnMarket int, listed bool) float64 {
	if !listed {
		return 50
	}

	switch {
	case daysOnMarket >= 365:
		return 100
	case daysOnMarket >= 270:
		return 95
	case daysOnMarket >= 180:
		return 85
	case daysOnMarket >= 90:
		return 70
	case daysOnMarket >= 60:
		return 60
	case daysOnMarket >= 30:
		return 50
	default:
		return 40
	}
}

// scoreContactability rewards each available contact channel.
func scoreContactability(lead domain.Lead) float64 {
	score := 0.0

	if lead.Phone1 != "" {
		score += 40
	}
	if lead.Phone2 != "" {
		score += 25
	}
	if lead.Phone3 != "" {
		score += 15
	}
	if lead.Email != "" {
		score += 20
	}

	return math.Min(100, score)
}
