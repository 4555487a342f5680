package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	apphttp "realtool_backend/internal/http"
	"realtool_backend/internal/http/router"
	"realtool_backend/internal/leads"
	"realtool_backend/internal/leads/agent"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
	"realtool_backend/internal/sheets"
	"realtool_backend/platform/ai/gemini"
	"realtool_backend/platform/ai/openai"
	"realtool_backend/platform/config"
	"realtool_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting skip trace lead service", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sheetsClient := sheets.NewClient(log)

	// A disabled analyzer must stay a nil interface, not a typed nil pointer.
	var analyzer service.LeadAnalyzer
	if a := buildAnalyzer(cfg, log); a != nil {
		analyzer = a
	}

	leadsModule := leads.NewModule(sheetsClient, cfg, scoring.WeightsFromConfig(cfg), analyzer, log)

	// Score whatever the sheet holds right now so the API is immediately
	// useful; clients re-run the pass via POST /leads/refresh.
	count := leadsModule.Service().Refresh(ctx, nil)
	log.Info("initial scoring pass complete", "leads", count)

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			leadsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// buildAnalyzer selects the configured completion provider. Without a
// credential the analyzer stays nil and analysis endpoints report 503.
func buildAnalyzer(cfg *config.Config, log *logger.Logger) *agent.Analyzer {
	if !cfg.IsAIEnabled() {
		log.Warn("no AI credential configured; narrative analysis disabled")
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

	log.Info("narrative analysis enabled", "provider", cfg.GetAIProvider(), "model", model.Name())
	return agent.NewAnalyzer(model, log, cfg.GetAIMaxConcurrency(), cfg.GetAIRequestsPerMinute())
}
