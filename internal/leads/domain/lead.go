// Package domain defines the lead records flowing through the skip trace
// pipeline: raw spreadsheet rows, normalized leads, and scored leads.
package domain

// RawRow is one spreadsheet data row keyed by its case-folded, trimmed
// header names. It is retained on the normalized lead for traceability.
type RawRow struct {
	// RowNumber is the 1-based spreadsheet row, accounting for the header row.
	RowNumber int
	Cells     map[string]string
}

// Get returns the first non-empty cell value among the given header aliases.
func (r RawRow) Get(keys ...string) string {
	for _, key := range keys {
		if value := r.Cells[key]; value != "" {
			return value
		}
	}
	return ""
}

// Lead is the canonical normalized record. Numeric fields default to zero
// and boolean fields to false when the source cell is absent or unparseable.
type Lead struct {
	ID        string
	RowNumber int

	OwnerName string
	FirstName string
	LastName  string

	Phone1 string
	Phone2 string
	Phone3 string
	Email  string

	Address string
	Street  string
	City    string
	State   string
	Zip     string
	County  string

	PropertyType string
	Bedrooms     int
	Bathrooms    float64
	SquareFeet   int
	YearBuilt    int
	LotSize      float64

	AssessedValue float64
	MarketValue   float64
	LastSalePrice float64
	LastSaleDate  string

	EstimatedMortgage float64
	EstimatedEquity   float64
	LienAmount        float64

	TaxAmount     float64
	TaxDelinquent bool

	OwnerOccupied   bool
	AbsenteeOwner   bool
	OutOfStateOwner bool

	Vacant         bool
	Foreclosure    bool
	PreForeclosure bool

	DaysOnMarket  int
	Listed        bool
	ListingStatus string
	ListPrice     float64

	DistressIndicators []string

	LastContactDate string
	ContactAttempts int
	LeadStatus      string
	Notes           string
	AssignedTo      string

	Raw RawRow
}

// FactorScore is one factor's contribution to the aggregate score.
type FactorScore struct {
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// OfferRange holds formatted offer price points derived from the property
// value. Insufficient is true when no market or assessed value exists.
type OfferRange struct {
	Conservative string `json:"conservative,omitempty"`
	Midpoint     string `json:"midpoint,omitempty"`
	Aggressive   string `json:"aggressive,omitempty"`
	MarketValue  string `json:"market_value,omitempty"`
	Insufficient bool   `json:"insufficient,omitempty"`
}

// ScoredLead extends a lead with its scoring pass output. Instances are
// immutable once created; a rescoring pass produces a fresh list.
type ScoredLead struct {
	Lead

	// Score is the weighted aggregate. With the default weights it lands
	// in [0,100]; custom weights that do not sum to 100 push it outside
	// that range and no clamping is applied.
	Score              float64
	Breakdown          map[string]FactorScore
	Priority           string
	Insights           []string
	RecommendedActions []string
	EstimatedOffer     OfferRange
}
