package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
	"realtool_backend/internal/leads/transport"
	"realtool_backend/platform/logger"
	"realtool_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type fakeSource struct {
	grid [][]string
}

func (f *fakeSource) FetchValues(ctx context.Context, spreadsheetID, apiKey, sheetName, cellRange string) ([][]string, error) {
	return f.grid, nil
}

type fakeAnalyzer struct{}

func (fakeAnalyzer) AnalyzeLead(ctx context.Context, lead domain.ScoredLead) string { return "plan" }
func (fakeAnalyzer) AnalyzeTopLeads(ctx context.Context, leads []domain.ScoredLead) []string {
	out := make([]string, len(leads))
	for i := range out {
		out[i] = "plan"
	}
	return out
}

type sheetsConfig struct{}

func (sheetsConfig) GetSpreadsheetID() string { return "spreadsheet-123" }
func (sheetsConfig) GetSheetsAPIKey() string  { return "api-key" }
func (sheetsConfig) GetSheetName() string     { return "Sheet1" }
func (sheetsConfig) GetSheetRange() string    { return "A:Z" }

var testGrid = [][]string{
	{"owner_name", "phone", "email", "market_value", "tax_delinquent", "tax_amount", "vacant"},
	{"Cold Lead", "", "", "", "", "", ""},
	{"Hot Lead", "6502530000", "hot@example.com", "200000", "yes", "12000", "yes"},
}

func newTestRouter(analyzer service.LeadAnalyzer) (*gin.Engine, *service.Service) {
	gin.SetMode(gin.TestMode)

	log := logger.New("development")
	svc := service.New(&fakeSource{grid: testGrid}, sheetsConfig{}, scoring.DefaultWeights(), analyzer, log)

	engine := gin.New()
	New(svc, validator.New(), log).RegisterRoutes(engine.Group("/api/v1/leads"))
	return engine, svc
}

func TestRefresh_ReturnsCount(t *testing.T) {
	engine, _ := newTestRouter(nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/leads/refresh", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.RefreshResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected count 2, got %d", resp.Count)
	}
}

func TestRefresh_WeightOverride(t *testing.T) {
	engine, svc := newTestRouter(nil)

	body := `{"weights":{"contactability":100}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	leads := svc.All()
	if leads[0].Score != 60 {
		t.Fatalf("expected contactability-only score 60, got %.2f", leads[0].Score)
	}
}

func TestRefresh_RejectsNegativeWeight(t *testing.T) {
	engine, _ := newTestRouter(nil)

	body := `{"weights":{"distress":-5}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestList_FilterByPriority(t *testing.T) {
	engine, svc := newTestRouter(nil)
	svc.Refresh(context.Background(), nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads?priority=COLD", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var leads []transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &leads); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, lead := range leads {
		if !strings.Contains(lead.Priority, "COLD") {
			t.Fatalf("expected only COLD leads, got %q", lead.Priority)
		}
	}
}

func TestTop_LimitsResults(t *testing.T) {
	engine, svc := newTestRouter(nil)
	svc.Refresh(context.Background(), nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads/top?n=1", nil))

	var leads []transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &leads); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].OwnerName != "Hot Lead" {
		t.Fatalf("expected top lead first, got %q", leads[0].OwnerName)
	}
}

func TestTop_RejectsInvalidCount(t *testing.T) {
	engine, _ := newTestRouter(nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads/top?n=zero", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExportCSV(t *testing.T) {
	engine, svc := newTestRouter(nil)
	svc.Refresh(context.Background(), nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads/export.csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Score,Priority,Owner") {
		t.Fatalf("expected CSV header in body, got %q", rec.Body.String())
	}
}

func TestAnalyzeTop_Unconfigured(t *testing.T) {
	engine, svc := newTestRouter(nil)
	svc.Refresh(context.Background(), nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/leads/top/analysis", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzeTop_ReturnsStrategy(t *testing.T) {
	engine, svc := newTestRouter(fakeAnalyzer{})
	svc.Refresh(context.Background(), nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/leads/top/analysis", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var results []transport.AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 1 || results[0].Strategy != "plan" {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Lead.OwnerName != "Hot Lead" {
		t.Fatalf("expected top lead analyzed, got %q", results[0].Lead.OwnerName)
	}
}
