package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/svcbase/item-service/internal/commons"
	"github.com/svcbase/item-service/internal/health"
)

type ApplicationInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthResponse struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Version     string          `json:"version"`
	Service     string          `json:"service"`
	InstanceID  string          `json:"instance_id"`
	Application ApplicationInfo `json:"application"`
}

type ReadinessResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

type LivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	app        ApplicationInfo
	instanceID string
	checkers   []health.Checker
}

func NewHealthHandler(app ApplicationInfo, instanceID string, checkers ...health.Checker) *HealthHandler {
	return &HealthHandler{
		app:        app,
		instanceID: instanceID,
		checkers:   checkers,
	}
}

// HandleHealth reports static application metadata for load balancers and
// general monitoring.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     h.app.Version,
		Service:     commons.ServiceName,
		InstanceID:  h.instanceID,
		Application: h.app,
	})
}

// HandleReadiness runs every configured checker fresh per request. A single
// failing check flips the overall status and the response to 503; the other
// checks are still reported individually.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), commons.HealthCheckTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	ready := true
	for _, checker := range h.checkers {
		if err := checker.Check(ctx); err != nil {
			checks[checker.Name()] = err.Error()
			ready = false
			continue
		}
		checks[checker.Name()] = "ok"
	}

	status := "ready"
	code := http.StatusOK
	if !ready {
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	commons.RespondWithJSON(w, code, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// HandleLiveness must stay independent of every other component so a
// downstream failure can never make the process look dead.
func (h *HealthHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, LivenessResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
	})
}
