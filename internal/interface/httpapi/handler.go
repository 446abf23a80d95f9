package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"launchtrack-service/internal/domain/entity"
	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/internal/usecase"
	"launchtrack-service/pkg/logger"
)

// Handler serves the dashboard query and statistics endpoints over the
// launch store.
type Handler struct {
	launchRepo repository.LaunchRepository
	logger     logger.Logger
}

// NewHandler creates a new dashboard API handler
func NewHandler(launchRepo repository.LaunchRepository, logger logger.Logger) *Handler {
	return &Handler{
		launchRepo: launchRepo,
		logger:     logger,
	}
}

// Register mounts the dashboard routes on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/launches", h.handleLaunches)
	mux.HandleFunc("/api/stats/rockets", h.handleRocketStats)
	mux.HandleFunc("/api/stats/sites", h.handleSiteStats)
	mux.HandleFunc("/api/stats/frequency", h.handleFrequency)
}

// handleLaunches returns launches matching the query filters:
// from/to (RFC3339 or YYYY-MM-DD), rocket (repeatable), site (repeatable),
// success (true|false|unknown).
func (h *Handler) handleLaunches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	launches, err := h.launchRepo.Find(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to query launches", "error", err)
		http.Error(w, "failed to query launches", http.StatusInternalServerError)
		return
	}
	if launches == nil {
		launches = []*entity.EnrichedLaunch{}
	}
	h.writeJSON(w, launches)
}

// handleRocketStats returns the success percentage per rocket
func (h *Handler) handleRocketStats(w http.ResponseWriter, r *http.Request) {
	launches, ok := h.allLaunches(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, usecase.RocketSuccessRates(launches))
}

// handleSiteStats returns launch counts per launchpad name
func (h *Handler) handleSiteStats(w http.ResponseWriter, r *http.Request) {
	launches, ok := h.allLaunches(w, r)
	if !ok {
		return
	}
	counts := usecase.GroupCounts(launches, func(l *entity.EnrichedLaunch) *string {
		return l.LaunchpadName
	})
	h.writeJSON(w, counts)
}

// handleFrequency returns launch counts bucketed by month or year
func (h *Handler) handleFrequency(w http.ResponseWriter, r *http.Request) {
	launches, ok := h.allLaunches(w, r)
	if !ok {
		return
	}

	rule := usecase.BucketMonth
	switch r.URL.Query().Get("bucket") {
	case "", "month":
	case "year":
		rule = usecase.BucketYear
	default:
		http.Error(w, "bucket must be month or year", http.StatusBadRequest)
		return
	}

	series := usecase.TimeBucketCounts(launches, rule)
	if series == nil {
		series = []usecase.TimeBucket{}
	}
	h.writeJSON(w, series)
}

// allLaunches loads the launch set for a stats endpoint, honoring the same
// query filters as /api/launches so statistics reflect the filtered view.
func (h *Handler) allLaunches(w http.ResponseWriter, r *http.Request) ([]*entity.EnrichedLaunch, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	launches, err := h.launchRepo.Find(r.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to query launches", "error", err)
		http.Error(w, "failed to query launches", http.StatusInternalServerError)
		return nil, false
	}
	return launches, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func parseFilter(r *http.Request) (repository.LaunchFilter, error) {
	filter := repository.LaunchFilter{}
	query := r.URL.Query()

	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		return filter, fmt.Errorf("invalid from date: %w", err)
	}
	filter.From = from

	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		return filter, fmt.Errorf("invalid to date: %w", err)
	}
	filter.To = to

	filter.Rockets = query["rocket"]
	filter.Sites = query["site"]

	switch query.Get("success") {
	case "":
	case "true":
		v := true
		filter.Success = &v
	case "false":
		v := false
		filter.Success = &v
	case "unknown":
		filter.SuccessUnknown = true
	default:
		return filter, fmt.Errorf("success must be true, false or unknown")
	}

	return filter, nil
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
