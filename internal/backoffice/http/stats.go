package http

import (
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Stats Endpoint
//	@Description	Directory and content counts for the admin dashboard.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	adminapi.Stats
//	@Failure		401	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.StatsService.Snapshot(ctx)
	if err != nil {
		log.Error("failed to collect stats", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to collect stats")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.Stats{
		Accounts:           stats.Accounts,
		PendingInvitations: stats.PendingInvitations,
		Sheets:             stats.Sheets,
		PublishedSheets:    stats.PublishedSheets,
		Videos:             stats.Videos,
		PublishedVideos:    stats.PublishedVideos,
	})
}
