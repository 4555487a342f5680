// Package agent requests narrative sales-strategy analysis for scored leads
// from a generative text service.
package agent

import (
	"context"
	"time"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/platform/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// fallbackAnalysis is returned whenever the text service fails. Callers never
// see an error from analysis; the failure only shows up in the logs.
const fallbackAnalysis = "Error analyzing lead with AI."

// TextCompleter is the narrow boundary to the generative text service.
type TextCompleter interface {
	// Complete sends a system instruction and user prompt and returns the
	// generated text.
	Complete(ctx context.Context, system, user string) (string, error)
	// Name identifies the underlying model for logging.
	Name() string
}

// Analyzer turns scored leads into free-text action plans.
type Analyzer struct {
	model   TextCompleter
	log     *logger.Logger
	limiter *rate.Limiter

	// maxConcurrency bounds parallel requests in AnalyzeTopLeads to stay
	// inside upstream rate limits.
	maxConcurrency int
}

// NewAnalyzer creates an analyzer. requestsPerMinute throttles all calls
// through a shared limiter; maxConcurrency caps in-flight batch requests.
func NewAnalyzer(model TextCompleter, log *logger.Logger, maxConcurrency, requestsPerMinute int) *Analyzer {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	return &Analyzer{
		model:          model,
		log:            log,
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		maxConcurrency: maxConcurrency,
	}
}

// AnalyzeLead requests an action plan for one scored lead. Failures degrade
// to a fixed fallback string instead of an error.
func (a *Analyzer) AnalyzeLead(ctx context.Context, lead domain.ScoredLead) string {
	if err := a.limiter.Wait(ctx); err != nil {
		a.log.AnalysisError(err)
		return fallbackAnalysis
	}

	analysis, err := a.model.Complete(ctx, systemPrompt, buildLeadPrompt(lead))
	if err != nil {
		a.log.AnalysisError(err)
		return fallbackAnalysis
	}

	return analysis
}

// AnalyzeTopLeads analyzes several leads concurrently. The result slice is
// index-aligned with the input; entries that failed hold the fallback text.
// Calls are independent, so bounded parallelism does not change any output.
func (a *Analyzer) AnalyzeTopLeads(ctx context.Context, leads []domain.ScoredLead) []string {
	results := make([]string, len(leads))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrency)

	for i, lead := range leads {
		g.Go(func() error {
			results[i] = a.AnalyzeLead(groupCtx, lead)
			return nil
		})
	}

	// Workers never return errors; failures are already folded into results.
	_ = g.Wait()

	return results
}
