// lead-score-run performs one fetch-normalize-score pass and prints a
// leaderboard to stdout, with optional AI analysis of the top lead and
// optional CSV output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"realtool_backend/internal/leads"
	"realtool_backend/internal/leads/agent"
	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
	"realtool_backend/internal/sheets"
	"realtool_backend/platform/ai/gemini"
	"realtool_backend/platform/ai/openai"
	"realtool_backend/platform/config"
	"realtool_backend/platform/logger"
)

func main() {
	topCount := flag.Int("top", 10, "number of leads to print")
	analyze := flag.Bool("analyze", false, "request AI analysis for the top lead")
	exportCSV := flag.Bool("csv", false, "write the scored list as CSV to stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	ctx := context.Background()

	var analyzer service.LeadAnalyzer
	if *analyze {
		if a := buildAnalyzer(cfg, log); a != nil {
			analyzer = a
		}
	}

	module := leads.NewModule(sheets.NewClient(log), cfg, scoring.WeightsFromConfig(cfg), analyzer, log)
	svc := module.Service()

	count := svc.Refresh(ctx, nil)
	if count == 0 {
		fmt.Println("No leads found.")
		return
	}

	printLeaderboard(svc.Top(*topCount))

	if *analyze {
		result, err := svc.AnalyzeTop(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analysis unavailable: %v\n", err)
		} else {
			fmt.Printf("\nAI ANALYSIS FOR TOP LEAD: %s\n\n%s\n", result.Lead.OwnerName, result.Strategy)
		}
	}

	if *exportCSV {
		fmt.Println()
		if err := svc.WriteCSV(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "csv export failed: %v\n", err)
		}
	}
}

func printLeaderboard(leads []domain.ScoredLead) {
	divider := strings.Repeat("=", 100)

	fmt.Println(divider)
	fmt.Printf("TOP %d LEADS MOST LIKELY TO SELL\n", len(leads))
	fmt.Println(divider)

	for i, lead := range leads {
		fmt.Printf("\n%d. %s\n", i+1, lead.OwnerName)
		fmt.Printf("   %s, %s, %s %s\n", lead.Address, lead.City, lead.State, lead.Zip)
		fmt.Printf("   Score: %.1f/100 | Priority: %s\n", lead.Score, lead.Priority)
		fmt.Printf("   Value: $%.0f | Equity: $%.0f\n", lead.MarketValue, lead.EstimatedEquity)
		fmt.Printf("   Phone: %s | Email: %s\n", orNA(lead.Phone1), orNA(lead.Email))

		if len(lead.DistressIndicators) > 0 {
			fmt.Printf("   Distress: %s\n", strings.Join(lead.DistressIndicators, ", "))
		}
		if !lead.EstimatedOffer.Insufficient {
			fmt.Printf("   Offer Range: %s - %s\n", lead.EstimatedOffer.Conservative, lead.EstimatedOffer.Aggressive)
		}

		fmt.Println("   Insights:")
		for _, insight := range lead.Insights {
			fmt.Printf("      %s\n", insight)
		}

		fmt.Println("   Next Actions:")
		for _, action := range lead.RecommendedActions {
			fmt.Printf("      - %s\n", action)
		}
	}

	fmt.Println("\n" + divider)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func buildAnalyzer(cfg *config.Config, log *logger.Logger) *agent.Analyzer {
	if !cfg.IsAIEnabled() {
		log.Warn("no AI credential configured; skipping analysis")
		return nil
	}

	var model agent.TextCompleter
	switch strings.ToLower(cfg.GetAIProvider()) {
	case "gemini":
		model = gemini.NewModel(gemini.Config{
			APIKey: cfg.GetGeminiAPIKey(),
			Model:  cfg.GetGeminiModel(),
		})
	default:
		model = openai.NewModel(openai.Config{
			APIKey:  cfg.GetOpenAIAPIKey(),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Model:   cfg.GetOpenAIModel(),
		})
	}

	return agent.NewAnalyzer(model, log, cfg.GetAIMaxConcurrency(), cfg.GetAIRequestsPerMinute())
}
