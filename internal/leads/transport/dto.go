// Package transport defines the request and response shapes for the leads
// HTTP API.
package transport

import (
	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
)

// WeightsRequest optionally overrides the configured scoring weights for a
// single refresh pass. Omitted fields default to zero weight, so callers
// overriding anything should supply the full profile.
type WeightsRequest struct {
	Distress       *float64 `json:"distress" validate:"omitempty,gte=0"`
	Equity         *float64 `json:"equity" validate:"omitempty,gte=0"`
	PropertyAge    *float64 `json:"property_age" validate:"omitempty,gte=0"`
	TaxDelinquency *float64 `json:"tax_delinquency" validate:"omitempty,gte=0"`
	OwnershipType  *float64 `json:"ownership_type" validate:"omitempty,gte=0"`
	TimeOnMarket   *float64 `json:"time_on_market" validate:"omitempty,gte=0"`
	Contactability *float64 `json:"contactability" validate:"omitempty,gte=0"`
}

// ToWeights converts the request into a scoring weight profile.
func (w *WeightsRequest) ToWeights() scoring.Weights {
	return scoring.Weights{
		Distress:       deref(w.Distress),
		Equity:         deref(w.Equity),
		PropertyAge:    deref(w.PropertyAge),
		TaxDelinquency: deref(w.TaxDelinquency),
		OwnershipType:  deref(w.OwnershipType),
		TimeOnMarket:   deref(w.TimeOnMarket),
		Contactability: deref(w.Contactability),
	}
}

func deref(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

// RefreshRequest triggers a pipeline pass.
type RefreshRequest struct {
	Weights *WeightsRequest `json:"weights"`
}

// RefreshResponse reports the pass outcome.
type RefreshResponse struct {
	Count int `json:"count"`
}

// LeadResponse is the API view of a scored lead.
type LeadResponse struct {
	ID        string `json:"id"`
	RowNumber int    `json:"row_number"`

	OwnerName string `json:"owner_name"`
	Phone1    string `json:"phone_1,omitempty"`
	Phone2    string `json:"phone_2,omitempty"`
	Phone3    string `json:"phone_3,omitempty"`
	Email     string `json:"email,omitempty"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`

	PropertyType string  `json:"property_type,omitempty"`
	YearBuilt    int     `json:"year_built,omitempty"`
	MarketValue  float64 `json:"market_value"`
	Equity       float64 `json:"estimated_equity"`

	Score              float64                       `json:"score"`
	Priority           string                        `json:"priority"`
	Breakdown          map[string]domain.FactorScore `json:"breakdown"`
	DistressIndicators []string                      `json:"distress_indicators,omitempty"`
	Insights           []string                      `json:"insights,omitempty"`
	RecommendedActions []string                      `json:"recommended_actions,omitempty"`
	EstimatedOffer     domain.OfferRange             `json:"estimated_offer"`
}

// NewLeadResponse maps a scored lead to its API view.
func NewLeadResponse(lead domain.ScoredLead) LeadResponse {
	return LeadResponse{
		ID:                 lead.ID,
		RowNumber:          lead.RowNumber,
		OwnerName:          lead.OwnerName,
		Phone1:             lead.Phone1,
		Phone2:             lead.Phone2,
		Phone3:             lead.Phone3,
		Email:              lead.Email,
		Address:            lead.Address,
		City:               lead.City,
		State:              lead.State,
		Zip:                lead.Zip,
		PropertyType:       lead.PropertyType,
		YearBuilt:          lead.YearBuilt,
		MarketValue:        lead.MarketValue,
		Equity:             lead.EstimatedEquity,
		Score:              lead.Score,
		Priority:           lead.Priority,
		Breakdown:          lead.Breakdown,
		DistressIndicators: lead.DistressIndicators,
		Insights:           lead.Insights,
		RecommendedActions: lead.RecommendedActions,
		EstimatedOffer:     lead.EstimatedOffer,
	}
}

// NewLeadResponses maps a ranked list, preserving order.
func NewLeadResponses(leads []domain.ScoredLead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		out[i] = NewLeadResponse(lead)
	}
	return out
}

// AnalysisResponse pairs a lead with its narrative strategy.
type AnalysisResponse struct {
	Lead     LeadResponse `json:"lead"`
	Strategy string       `json:"strategy"`
}

// NewAnalysisResponses maps analysis results to their API view.
func NewAnalysisResponses(results []service.Analysis) []AnalysisResponse {
	out := make([]AnalysisResponse, len(results))
	for i, result := range results {
		out[i] = AnalysisResponse{
			Lead:     NewLeadResponse(result.Lead),
			Strategy: result.Strategy,
		}
	}
	return out
}
