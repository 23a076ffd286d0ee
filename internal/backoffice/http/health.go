package http

import (
	"net/http"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
)

type LivezHandler struct {
	BuildVersion string
	StartTime    time.Time
}

// ServeHTTP godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	adminapi.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, adminapi.HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.BuildVersion,
	})
}

type ReadyzHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking database connectivity.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	adminapi.HealthResponse	"status, checks"
//	@Failure		503	{object}	adminapi.HealthResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := &adminapi.HealthChecks{Database: "ok"}
	status := "ok"
	code := http.StatusOK

	if err := h.Store.Ping(r.Context()); err != nil {
		checks.Database = "error: " + err.Error()
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	httpx.WriteJSON(w, code, adminapi.HealthResponse{
		Status: status,
		Checks: checks,
	})
}
