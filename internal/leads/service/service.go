// Package service orchestrates the skip trace pipeline: fetch rows from the
// spreadsheet source, normalize and score them, and serve the resulting
// ranked list to the transport layer. The last scored list is the only state
// held between operations.
package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/ingest"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/platform/apperr"
	"realtool_backend/platform/config"
	"realtool_backend/platform/logger"
)

// SheetSource is the boundary to the tabular lead source.
type SheetSource interface {
	FetchValues(ctx context.Context, spreadsheetID, apiKey, sheetName, cellRange string) ([][]string, error)
}

// LeadAnalyzer is the boundary to the narrative analysis service.
type LeadAnalyzer interface {
	AnalyzeLead(ctx context.Context, lead domain.ScoredLead) string
	AnalyzeTopLeads(ctx context.Context, leads []domain.ScoredLead) []string
}

// Analysis pairs a scored lead with its narrative action plan.
type Analysis struct {
	Lead     domain.ScoredLead
	Strategy string
}

// Service runs the pipeline and holds the last scored list.
type Service struct {
	source   SheetSource
	cfg      config.SheetsConfig
	weights  scoring.Weights
	analyzer LeadAnalyzer // nil when no AI credential is configured
	log      *logger.Logger

	mu     sync.RWMutex
	scored []domain.ScoredLead
}

// New creates the pipeline service. analyzer may be nil, which makes the
// analysis operations report unavailable.
func New(source SheetSource, cfg config.SheetsConfig, weights scoring.Weights, analyzer LeadAnalyzer, log *logger.Logger) *Service {
	return &Service{
		source:   source,
		cfg:      cfg,
		weights:  weights,
		analyzer: analyzer,
		log:      log,
	}
}

// Refresh fetches the sheet, normalizes and scores every row, and replaces
// the held list. A fetch failure is logged and degrades to an empty list; it
// is indistinguishable from a genuinely empty sheet. weights overrides the
// configured profile for this pass only when non-nil.
func (s *Service) Refresh(ctx context.Context, weights *scoring.Weights) int {
	grid, err := s.source.FetchValues(ctx, s.cfg.GetSpreadsheetID(), s.cfg.GetSheetsAPIKey(), s.cfg.GetSheetName(), s.cfg.GetSheetRange())
	if err != nil {
		s.log.SourceError("refresh", err)
		grid = nil
	}

	rows := ingest.RowsToRawRows(grid)
	leads := ingest.NormalizeAll(rows)
	s.log.PipelineEvent("normalized", len(leads))

	effective := s.weights
	if weights != nil {
		effective = *weights
	}

	scored := scoring.NewEngine(effective).ScoreAll(leads)
	s.log.PipelineEvent("scored", len(scored))

	s.mu.Lock()
	s.scored = scored
	s.mu.Unlock()

	return len(scored)
}

// All returns a copy of the scored list in ranked order.
func (s *Service) All() []domain.ScoredLead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ScoredLead, len(s.scored))
	copy(out, s.scored)
	return out
}

// Top returns the n highest scoring leads.
func (s *Service) Top(n int) []domain.ScoredLead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(s.scored) {
		n = len(s.scored)
	}

	out := make([]domain.ScoredLead, n)
	copy(out, s.scored[:n])
	return out
}

// ByPriority returns leads whose priority label contains the given text,
// case-insensitively, keeping ranked order.
func (s *Service) ByPriority(priority string) []domain.ScoredLead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(priority))

	var out []domain.ScoredLead
	for _, lead := range s.scored {
		if strings.Contains(lead.Priority, needle) {
			out = append(out, lead)
		}
	}
	return out
}

// AnalyzeTop runs narrative analysis for the single top-ranked lead.
func (s *Service) AnalyzeTop(ctx context.Context) (Analysis, error) {
	results, err := s.AnalyzeTopN(ctx, 1)
	if err != nil {
		return Analysis{}, err
	}
	return results[0], nil
}

// AnalyzeTopN runs narrative analysis for the n top-ranked leads.
func (s *Service) AnalyzeTopN(ctx context.Context, n int) ([]Analysis, error) {
	if s.analyzer == nil {
		return nil, apperr.Unavailable("AI analysis is not configured")
	}

	leads := s.Top(n)
	if len(leads) == 0 {
		return nil, apperr.NotFound("no scored leads available, refresh first")
	}

	strategies := s.analyzer.AnalyzeTopLeads(ctx, leads)

	results := make([]Analysis, len(leads))
	for i, lead := range leads {
		results[i] = Analysis{Lead: lead, Strategy: strategies[i]}
	}
	return results, nil
}

// WriteCSV streams the scored list's key fields as CSV.
func (s *Service) WriteCSV(w io.Writer) error {
	leads := s.All()

	writer := csv.NewWriter(w)
	header := []string{"Score", "Priority", "Owner", "Address", "Phone", "Email", "Value", "Equity", "Distress Indicators"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, lead := range leads {
		record := []string{
			strconv.FormatFloat(lead.Score, 'f', 1, 64),
			lead.Priority,
			lead.OwnerName,
			strings.Join([]string{lead.Address, lead.City, lead.State}, ", "),
			lead.Phone1,
			lead.Email,
			strconv.FormatFloat(lead.MarketValue, 'f', -1, 64),
			strconv.FormatFloat(lead.EstimatedEquity, 'f', -1, 64),
			strings.Join(lead.DistressIndicators, "; "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
