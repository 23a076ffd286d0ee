package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type VideoListHandler struct {
	VideoService *service.VideoService
}

// ServeHTTP godoc
//
//	@Summary		Video List Endpoint
//	@Tags			Videos
//	@Produce		json
//	@Success		200	{array}	adminapi.Video
//	@Security		BearerAuth
//	@Router			/v1/videos [get].
func (h *VideoListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	videos, err := h.VideoService.List(ctx)
	if err != nil {
		log.Error("failed to list videos", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list videos")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videoViews(videos))
}

type VideoCreateHandler struct {
	VideoService *service.VideoService
}

// ServeHTTP godoc
//
//	@Summary		Video Create Endpoint
//	@Tags			Videos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.VideoRequest	true	"Video"
//	@Success		201		{object}	adminapi.Video
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/videos [post].
func (h *VideoCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.VideoService.Create(ctx, req.Title, req.URL, req.Description, req.Published)
	if err != nil {
		writeVideoError(w, log, err, "Failed to create video")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, videoView(video))
}

type VideoGetHandler struct {
	VideoService *service.VideoService
}

// ServeHTTP godoc
//
//	@Summary		Video Get Endpoint
//	@Tags			Videos
//	@Produce		json
//	@Param			id	path		string	true	"Video ID"
//	@Success		200	{object}	adminapi.Video
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/videos/{id} [get].
func (h *VideoGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	video, err := h.VideoService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeVideoError(w, log, err, "Failed to load video")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videoView(video))
}

type VideoUpdateHandler struct {
	VideoService *service.VideoService
}

// ServeHTTP godoc
//
//	@Summary		Video Update Endpoint
//	@Tags			Videos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Video ID"
//	@Param			request	body		adminapi.VideoRequest	true	"Video"
//	@Success		200		{object}	adminapi.Video
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/videos/{id} [put].
func (h *VideoUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.VideoService.Update(ctx, r.PathValue("id"),
		req.Title, req.URL, req.Description, req.Published)
	if err != nil {
		writeVideoError(w, log, err, "Failed to update video")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, videoView(video))
}

type VideoDeleteHandler struct {
	VideoService *service.VideoService
}

// ServeHTTP godoc
//
//	@Summary		Video Delete Endpoint
//	@Tags			Videos
//	@Produce		json
//	@Param			id	path		string	true	"Video ID"
//	@Success		204	{object}	nil
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/videos/{id} [delete].
func (h *VideoDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.VideoService.Delete(ctx, r.PathValue("id")); err != nil {
		writeVideoError(w, log, err, "Failed to delete video")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func writeVideoError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Video not found")
	case errors.Is(err, service.ErrInvalidVideo):
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid video")
	default:
		log.Error(fallback, "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}
