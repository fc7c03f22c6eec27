package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/robrmz/MDE-Day-Planner/internal/config"
	"github.com/robrmz/MDE-Day-Planner/internal/planner"
	"github.com/robrmz/MDE-Day-Planner/pkg/constants"
	"github.com/robrmz/MDE-Day-Planner/pkg/output"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and plan API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Plan API endpoint
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type planRequest struct {
	Alpha           float64 `json:"alpha"`
	Power           float64 `json:"power"`
	BaselineRate    float64 `json:"baselineRate"`
	DailySampleSize int     `json:"dailySampleSize"`
	MaxDays         int     `json:"maxDays"`
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
}

type planResponse struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Points   []planPoint `json:"points"`
	CSV      string      `json:"csv"`
	Warnings []string    `json:"warnings,omitempty"`
	Duration string      `json:"duration"`
}

type planPoint struct {
	Day         int     `json:"day"`
	SampleSize  int     `json:"sampleSize"`
	MDEAbsolute float64 `json:"mdeAbsolute"`
	MDEPercent  float64 `json:"mdePercent"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode plan request: %v", err))
		return
	}

	scenario := config.Scenario{
		Name:            "plan",
		Active:          true,
		Alpha:           req.Alpha,
		Power:           req.Power,
		BaselineRate:    req.BaselineRate,
		DailySampleSize: req.DailySampleSize,
		MaxDays:         req.MaxDays,
	}

	conf := config.Configuration{Scenarios: []config.Scenario{scenario}}
	warnings := conf.ValidateConfiguration()

	points, err := planner.ComputeSeries(scenario)
	if err != nil {
		var domainErr *planner.DomainError
		if errors.As(err, &domainErr) {
			h.respondError(w, http.StatusBadRequest, domainErr.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute plan: %v", err))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = config.DefaultPlotTitle
	}
	subtitle := strings.TrimSpace(req.Subtitle)
	if subtitle == "" {
		subtitle = config.DefaultSubtitle(req.BaselineRate, req.DailySampleSize, req.Power)
	}

	elapsed := time.Since(start)

	response := planResponse{
		Title:    title,
		Subtitle: subtitle,
		Points:   buildPoints(points),
		CSV:      output.CsvString([]planner.Series{{Name: "plan", Points: points}}),
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("plan computed",
		zap.String("op", "server.handlePlan"),
		zap.Int("days", len(response.Points)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	if h.logger != nil {
		h.logger.Error("plan request failed",
			zap.String("op", "server.handlePlan"),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func buildPoints(points []planner.Point) []planPoint {
	result := make([]planPoint, 0, len(points))
	for _, point := range points {
		result = append(result, planPoint{
			Day:         point.Day,
			SampleSize:  point.SampleSize,
			MDEAbsolute: point.MDEAbsolute,
			MDEPercent:  point.MDEPercent,
		})
	}
	return result
}
