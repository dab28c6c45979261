package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"marine-platform/internal/models"
	"marine-platform/internal/registry"
	"marine-platform/internal/services"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

// ViewHandler handles the derived view and dataset API endpoints
type ViewHandler struct {
	viewService *services.ViewService
	registry    *registry.Registry
	logger      *logging.StructuredLogger
	metrics     *metrics.Collector
}

// NewViewHandler creates a new view handler
func NewViewHandler(
	viewService *services.ViewService,
	reg *registry.Registry,
	logger *logging.StructuredLogger,
	metricsCollector *metrics.Collector,
) *ViewHandler {
	return &ViewHandler{
		viewService: viewService,
		registry:    reg,
		logger:      logger,
		metrics:     metricsCollector,
	}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// parseControlState builds a control state from query parameters,
// starting from the defaults so unspecified controls keep their
// documented values. Validation happens in the service layer; parsing
// only rejects values that are not even the right shape.
func parseControlState(r *http.Request) (models.ControlState, error) {
	state := models.DefaultControlState()
	q := r.URL.Query()

	if unit := q.Get("unit"); unit != "" {
		state.Unit = models.TemperatureUnit(unit)
	}
	if s := q.Get("start_year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return state, errors.New("invalid start_year, expected integer")
		}
		state.YearWindow.Min = year
	}
	if s := q.Get("end_year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return state, errors.New("invalid end_year, expected integer")
		}
		state.YearWindow.Max = year
	}
	if affinities, ok := q["affinity"]; ok {
		state.AffinityFilter = make([]models.ThermalAffinity, 0, len(affinities))
		for _, a := range affinities {
			state.AffinityFilter = append(state.AffinityFilter, models.ThermalAffinity(a))
		}
	}
	if species := q.Get("species"); species != "" {
		state.SelectedSpecies = species
	}
	if highlight := q.Get("highlight"); highlight != "" {
		state.HighlightTarget = highlight
	}
	if mode := q.Get("color_mode"); mode != "" {
		state.ColorMode = models.ColorMode(mode)
	}
	if mode := q.Get("map_mode"); mode != "" {
		state.MapViewMode = models.MapViewMode(mode)
	}
	return state, nil
}

// viewFunc adapts one ViewService method to the shared handler flow.
type viewFunc func(r *http.Request, state models.ControlState) (interface{}, error)

// serveView runs the shared view request flow: parse controls, compute,
// map domain errors to status codes.
func (h *ViewHandler) serveView(w http.ResponseWriter, r *http.Request, endpoint string, compute viewFunc) {
	ctx := r.Context()
	startTime := time.Now()

	defer func() {
		duration := time.Since(startTime)
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	}()

	state, err := parseControlState(r)
	if err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := compute(r, state)
	if err != nil {
		var invalidErr *models.InvalidControlStateError
		var nodeErr *models.UnknownNodeError
		var datasetErr *models.UnknownDatasetError
		switch {
		case errors.As(err, &invalidErr):
			h.metrics.RecordAPIError("invalid_control_state", endpoint)
			h.sendError(w, r, err.Error(), http.StatusBadRequest)
		case errors.As(err, &nodeErr), errors.As(err, &datasetErr):
			h.metrics.RecordAPIError("not_found", endpoint)
			h.sendError(w, r, err.Error(), http.StatusNotFound)
		default:
			h.logger.Error(ctx, "[API_VIEW_ERROR] Failed to compute view", logging.Fields{
				"endpoint": endpoint,
			}, err)
			h.metrics.RecordAPIError("internal_error", endpoint)
			h.sendError(w, r, "failed to compute view", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.sendJSON(w, view, http.StatusOK)
}

// GetTemperatureView handles GET /api/views/temperature
func (h *ViewHandler) GetTemperatureView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/temperature", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.TemperatureView(r.Context(), state)
	})
}

// GetSpeciesView handles GET /api/views/species
func (h *ViewHandler) GetSpeciesView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/species", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.SpeciesView(r.Context(), state)
	})
}

// GetLandingsView handles GET /api/views/landings
func (h *ViewHandler) GetLandingsView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/landings", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.LandingsView(r.Context(), state)
	})
}

// GetEcosystemView handles GET /api/views/ecosystem
func (h *ViewHandler) GetEcosystemView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/ecosystem", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.EcosystemView(r.Context(), state)
	})
}

// GetSpatialView handles GET /api/views/spatial
func (h *ViewHandler) GetSpatialView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/spatial", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.SpatialView(r.Context(), state)
	})
}

// GetFoodWebView handles GET /api/views/foodweb
func (h *ViewHandler) GetFoodWebView(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "/api/views/foodweb", func(r *http.Request, state models.ControlState) (interface{}, error) {
		return h.viewService.FoodWebView(r.Context(), state)
	})
}

// ListDatasets handles GET /api/datasets
func (h *ViewHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	response := map[string][]string{
		"datasets": h.registry.Names(),
	}
	h.metrics.RecordAPIRequest("/api/datasets", "GET", "200")
	h.sendJSON(w, response, http.StatusOK)
}

// ExportDataset handles GET /api/datasets/{name}/export
func (h *ViewHandler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]
	endpoint := "/api/datasets/export"

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	}()

	header, rows, err := h.registry.ExportCSV(name)
	if err != nil {
		var datasetErr *models.UnknownDatasetError
		if errors.As(err, &datasetErr) {
			h.metrics.RecordAPIError("not_found", endpoint)
			h.sendError(w, r, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error(ctx, "[API_EXPORT_ERROR] Failed to export dataset", logging.Fields{
			"dataset": name,
		}, err)
		h.metrics.RecordAPIError("internal_error", endpoint)
		h.sendError(w, r, "failed to export dataset", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	writer.Write(header)
	writer.WriteAll(rows)
	writer.Flush()
	if err := writer.Error(); err != nil {
		// Headers are already sent; the client sees a truncated body.
		h.logger.Error(ctx, "[API_EXPORT_ERROR] Failed to write CSV body", logging.Fields{
			"dataset": name,
		}, err)
		h.metrics.RecordAPIError("write_error", endpoint)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.metrics.ExportRowsTotal.WithLabelValues(name).Add(float64(len(rows)))
	h.logger.Debug(ctx, "[API_EXPORT] Dataset exported", logging.Fields{
		"dataset": name,
		"rows":    len(rows),
	})
}

// HealthCheck handles GET /health
func (h *ViewHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	h.logger.Debug(ctx, "[HEALTH_CHECK] Health check requested", logging.Fields{})
	h.sendJSON(w, status, http.StatusOK)
}

// sendJSON sends a JSON response
func (h *ViewHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response
func (h *ViewHandler) sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	h.metrics.RecordAPIRequest(r.URL.Path, r.Method, strconv.Itoa(statusCode))

	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	h.sendJSON(w, response, statusCode)
}

// RegisterRoutes registers all view API routes
func (h *ViewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/views/temperature", h.GetTemperatureView).Methods("GET")
	router.HandleFunc("/api/views/species", h.GetSpeciesView).Methods("GET")
	router.HandleFunc("/api/views/landings", h.GetLandingsView).Methods("GET")
	router.HandleFunc("/api/views/ecosystem", h.GetEcosystemView).Methods("GET")
	router.HandleFunc("/api/views/spatial", h.GetSpatialView).Methods("GET")
	router.HandleFunc("/api/views/foodweb", h.GetFoodWebView).Methods("GET")
	router.HandleFunc("/api/datasets", h.ListDatasets).Methods("GET")
	router.HandleFunc("/api/datasets/{name}/export", h.ExportDataset).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}
