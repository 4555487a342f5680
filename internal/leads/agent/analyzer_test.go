package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/platform/logger"
)

type fakeCompleter struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, user)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) Name() string { return "fake" }

func newTestAnalyzer(model TextCompleter) *Analyzer {
	return NewAnalyzer(model, logger.New("development"), 3, 600)
}

func scoredLead() domain.ScoredLead {
	return domain.ScoredLead{
		Lead: domain.Lead{
			OwnerName:          "Jane Doe",
			Address:            "123 Main St",
			City:               "Dallas",
			State:              "TX",
			Zip:                "75001",
			MarketValue:        200000,
			DistressIndicators: []string{"Tax Delinquent"},
		},
		Score:    72.5,
		Priority: "WARM",
		EstimatedOffer: domain.OfferRange{
			Conservative: "$110,000",
			Midpoint:     "$130,000",
			Aggressive:   "$140,000",
			MarketValue:  "$200,000",
		},
	}
}

func TestAnalyzeLead_ReturnsModelText(t *testing.T) {
	model := &fakeCompleter{reply: "call the owner today"}
	analyzer := newTestAnalyzer(model)

	got := analyzer.AnalyzeLead(context.Background(), scoredLead())
	if got != "call the owner today" {
		t.Fatalf("expected model reply, got %q", got)
	}
}

func TestAnalyzeLead_FallbackOnError(t *testing.T) {
	model := &fakeCompleter{err: errors.New("upstream down")}
	analyzer := newTestAnalyzer(model)

	got := analyzer.AnalyzeLead(context.Background(), scoredLead())
	if got != fallbackAnalysis {
		t.Fatalf("expected fallback text, got %q", got)
	}
}

func TestAnalyzeLead_PromptContents(t *testing.T) {
	model := &fakeCompleter{reply: "ok"}
	analyzer := newTestAnalyzer(model)

	analyzer.AnalyzeLead(context.Background(), scoredLead())

	if len(model.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(model.prompts))
	}
	prompt := model.prompts[0]

	for _, fragment := range []string{
		"Jane Doe",
		"123 Main St, Dallas, TX 75001",
		"LEAD SCORE: 72.5/100 (WARM)",
		"Tax Delinquent",
		"$130,000",
		"**Opening Script**",
		"**Red Flags**",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected prompt to contain %q\nprompt: %s", fragment, prompt)
		}
	}
}

func TestAnalyzeTopLeads_ResultsIndexAligned(t *testing.T) {
	model := &fakeCompleter{reply: "plan"}
	analyzer := newTestAnalyzer(model)

	leads := []domain.ScoredLead{scoredLead(), scoredLead(), scoredLead()}
	results := analyzer.AnalyzeTopLeads(context.Background(), leads)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, result := range results {
		if result != "plan" {
			t.Fatalf("expected result %d to be the model reply, got %q", i, result)
		}
	}
}

func TestAnalyzeTopLeads_FailuresFoldIntoFallback(t *testing.T) {
	model := &fakeCompleter{err: errors.New("quota exhausted")}
	analyzer := newTestAnalyzer(model)

	results := analyzer.AnalyzeTopLeads(context.Background(), []domain.ScoredLead{scoredLead(), scoredLead()})

	for i, result := range results {
		if result != fallbackAnalysis {
			t.Fatalf("expected fallback at index %d, got %q", i, result)
		}
	}
}
