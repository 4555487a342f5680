// Package handler exposes the skip trace pipeline over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
	"realtool_backend/internal/leads/transport"
	"realtool_backend/platform/httpkit"
	"realtool_backend/platform/logger"
	"realtool_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const defaultTopCount = 10

// Handler serves the leads API.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
	log      *logger.Logger
}

// New creates a leads handler.
func New(svc *service.Service, validate *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, validate: validate, log: log}
}

// RegisterRoutes mounts the leads endpoints on the given group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/refresh", h.Refresh)
	group.GET("", h.List)
	group.GET("/top", h.Top)
	group.GET("/export.csv", h.ExportCSV)
	group.POST("/top/analysis", h.AnalyzeTop)
}

// Refresh re-runs the fetch-normalize-score pass. An optional body supplies
// scoring weight overrides for this pass only.
func (h *Handler) Refresh(c *gin.Context) {
	var req transport.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid refresh request", err.Error())
			return
		}
		if err := h.validate.Struct(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid scoring weights", err.Error())
			return
		}
	}

	var weights *scoring.Weights
	if req.Weights != nil {
		converted := req.Weights.ToWeights()
		weights = &converted
	}

	count := h.svc.Refresh(c.Request.Context(), weights)
	httpkit.OK(c, transport.RefreshResponse{Count: count})
}

// List returns the scored leads in ranked order, optionally filtered by a
// priority label fragment.
func (h *Handler) List(c *gin.Context) {
	priority := c.Query("priority")

	if priority != "" {
		httpkit.OK(c, transport.NewLeadResponses(h.svc.ByPriority(priority)))
		return
	}
	httpkit.OK(c, transport.NewLeadResponses(h.svc.All()))
}

// Top returns the n highest scoring leads.
func (h *Handler) Top(c *gin.Context) {
	n, ok := h.countParam(c, "n", defaultTopCount)
	if !ok {
		return
	}
	httpkit.OK(c, transport.NewLeadResponses(h.svc.Top(n)))
}

// ExportCSV streams the scored list as a CSV attachment.
func (h *Handler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)

	if err := h.svc.WriteCSV(c.Writer); err != nil {
		h.log.WithContext(c.Request.Context()).Error("csv export failed", "error", err)
	}
}

// AnalyzeTop requests narrative strategies for the n top-ranked leads.
func (h *Handler) AnalyzeTop(c *gin.Context) {
	n, ok := h.countParam(c, "n", 1)
	if !ok {
		return
	}

	results, err := h.svc.AnalyzeTopN(c.Request.Context(), n)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewAnalysisResponses(results))
}

// countParam parses a positive integer query parameter with a default.
func (h *Handler) countParam(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		httpkit.Error(c, http.StatusBadRequest, name+" must be a positive integer", nil)
		return 0, false
	}
	return value, true
}
