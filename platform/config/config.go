// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// SheetsConfig provides settings for the Google Sheets lead source.
type SheetsConfig interface {
	GetSpreadsheetID() string
	GetSheetsAPIKey() string
	GetSheetName() string
	GetSheetRange() string
}

// AIConfig provides settings for the narrative analysis service.
type AIConfig interface {
	GetAIProvider() string
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetOpenAIModel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetAIMaxConcurrency() int
	GetAIRequestsPerMinute() int
	IsAIEnabled() bool
}

// ScoringConfig provides the default scoring weights.
type ScoringConfig interface {
	GetWeightDistress() float64
	GetWeightEquity() float64
	GetWeightPropertyAge() float64
	GetWeightTaxDelinquency() float64
	GetWeightOwnershipType() float64
	GetWeightTimeOnMarket() float64
	GetWeightContactability() float64
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll bool
	CORSOrigins  []string

	SpreadsheetID string
	SheetsAPIKey  string
	SheetName     string
	SheetRange    string

	AIProvider          string
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	GeminiAPIKey        string
	GeminiModel         string
	AIMaxConcurrency    int
	AIRequestsPerMinute int

	WeightDistress       float64
	WeightEquity         float64
	WeightPropertyAge    float64
	WeightTaxDelinquency float64
	WeightOwnershipType  float64
	WeightTimeOnMarket   float64
	WeightContactability float64
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// SheetsConfig implementation
func (c *Config) GetSpreadsheetID() string { return c.SpreadsheetID }
func (c *Config) GetSheetsAPIKey() string  { return c.SheetsAPIKey }
func (c *Config) GetSheetName() string     { return c.SheetName }
func (c *Config) GetSheetRange() string    { return c.SheetRange }

// AIConfig implementation
func (c *Config) GetAIProvider() string       { return c.AIProvider }
func (c *Config) GetOpenAIAPIKey() string     { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIBaseURL() string    { return c.OpenAIBaseURL }
func (c *Config) GetOpenAIModel() string      { return c.OpenAIModel }
func (c *Config) GetGeminiAPIKey() string     { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string      { return c.GeminiModel }
func (c *Config) GetAIMaxConcurrency() int    { return c.AIMaxConcurrency }
func (c *Config) GetAIRequestsPerMinute() int { return c.AIRequestsPerMinute }

// IsAIEnabled reports whether a credential exists for the selected provider.
func (c *Config) IsAIEnabled() bool {
	switch strings.ToLower(c.AIProvider) {
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// ScoringConfig implementation
func (c *Config) GetWeightDistress() float64       { return c.WeightDistress }
func (c *Config) GetWeightEquity() float64         { return c.WeightEquity }
func (c *Config) GetWeightPropertyAge() float64    { return c.WeightPropertyAge }
func (c *Config) GetWeightTaxDelinquency() float64 { return c.WeightTaxDelinquency }
func (c *Config) GetWeightOwnershipType() float64  { return c.WeightOwnershipType }
func (c *Config) GetWeightTimeOnMarket() float64   { return c.WeightTimeOnMarket }
func (c *Config) GetWeightContactability() float64 { return c.WeightContactability }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,

		SpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsAPIKey:  getEnv("SHEETS_API_KEY", ""),
		SheetName:     getEnv("SHEETS_NAME", "Sheet1"),
		SheetRange:    getEnv("SHEETS_RANGE", "A:Z"),

		AIProvider:          strings.ToLower(getEnv("AI_PROVIDER", "openai")),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AIMaxConcurrency:    mustInt(getEnv("AI_MAX_CONCURRENCY", "3")),
		AIRequestsPerMinute: mustInt(getEnv("AI_REQUESTS_PER_MINUTE", "20")),

		WeightDistress:       mustFloat(getEnv("SCORE_WEIGHT_DISTRESS", "30")),
		WeightEquity:         mustFloat(getEnv("SCORE_WEIGHT_EQUITY", "20")),
		WeightPropertyAge:    mustFloat(getEnv("SCORE_WEIGHT_PROPERTY_AGE", "10")),
		WeightTaxDelinquency: mustFloat(getEnv("SCORE_WEIGHT_TAX_DELINQUENCY", "15")),
		WeightOwnershipType:  mustFloat(getEnv("SCORE_WEIGHT_OWNERSHIP_TYPE", "10")),
		WeightTimeOnMarket:   mustFloat(getEnv("SCORE_WEIGHT_TIME_ON_MARKET", "10")),
		WeightContactability: mustFloat(getEnv("SCORE_WEIGHT_CONTACTABILITY", "5")),
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID is required")
	}
	if cfg.SheetsAPIKey == "" {
		return nil, fmt.Errorf("SHEETS_API_KEY is required")
	}
	if cfg.AIProvider != "openai" && cfg.AIProvider != "gemini" {
		return nil, fmt.Errorf("AI_PROVIDER must be openai or gemini, got %q", cfg.AIProvider)
	}
	if cfg.AIMaxConcurrency < 1 {
		cfg.AIMaxConcurrency = 1
	}
	if cfg.AIRequestsPerMinute < 1 {
		cfg.AIRequestsPerMinute = 1
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
