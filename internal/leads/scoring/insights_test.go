package scoring

import (
	"strings"
	"testing"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/ingest"
)

func TestGenerateInsights_AllConditionsIndependent(t *testing.T) {
	engine := testEngine(DefaultWeights())

	lead := domain.Lead{
		DistressIndicators: []string{ingest.IndicatorTaxDelinquent, ingest.IndicatorVacant},
		TaxDelinquent:      true,
		Vacant:             true,
		PreForeclosure:     true,
		AbsenteeOwner:      true,
		DaysOnMarket:       200,
		YearBuilt:          1960,
		MarketValue:        200000,
		EstimatedEquity:    150000,
		Phone1:             "+16502530000",
		Email:              "owner@example.com",
	}

	insights := engine.generateInsights(lead)

	wantPrefixes := []string{
		"DISTRESS SIGNALS: Tax Delinquent, Vacant",
		"FORECLOSURE:",
		"TAX DELINQUENT:",
		"VACANT PROPERTY:",
		"HIGH EQUITY (75%)",
		"REMOTE OWNER:",
		"STALE LISTING (200 days)",
		"OLDER PROPERTY (66 years)",
		"MULTI-CHANNEL:",
	}

	if len(insights) != len(wantPrefixes) {
		t.Fatalf("expected %d insights, got %d: %v", len(wantPrefixes), len(insights), insights)
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(insights[i], prefix) {
			t.Fatalf("expected insight %d to start with %q, got %q", i, prefix, insights[i])
		}
	}
}

func TestGenerateInsights_UnderwaterAndLimitedContact(t *testing.T) {
	engine := testEngine(DefaultWeights())

	lead := domain.Lead{
		MarketValue:     200000,
		EstimatedEquity: -5000,
	}

	insights := engine.generateInsights(lead)

	want := []string{
		"UNDERWATER: Owner may be desperate, consider short sale",
		"LIMITED CONTACT INFO: May need additional skip tracing",
	}
	if len(insights) != 2 || insights[0] != want[0] || insights[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, insights)
	}
}

func TestGenerateInsights_NoConditions(t *testing.T) {
	engine := testEngine(DefaultWeights())

	lead := domain.Lead{Phone1: "+16502530000"}
	if insights := engine.generateInsights(lead); len(insights) != 0 {
		t.Fatalf("expected no insights, got %v", insights)
	}
}

func TestRecommendedActions_Bands(t *testing.T) {
	cases := []struct {
		score float64
		first string
		count int
	}{
		{85, "IMMEDIATE CALL - Top priority lead", 3},
		{70, "Call within 24-48 hours", 3},
		{55, "Add to regular calling rotation", 3},
		{30, "Add to long-term nurture campaign", 2},
	}

	for _, tc := range cases {
		actions := recommendedActions(tc.score)
		if len(actions) != tc.count {
			t.Fatalf("score %v: expected %d actions, got %d", tc.score, tc.count, len(actions))
		}
		if actions[0] != tc.first {
			t.Fatalf("score %v: expected first action %q, got %q", tc.score, tc.first, actions[0])
		}
	}
}
