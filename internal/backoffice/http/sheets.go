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

type SheetListHandler struct {
	SheetService *service.SheetService
}

// ServeHTTP godoc
//
//	@Summary		Sheet List Endpoint
//	@Description	List all technical sheets, published or not, most recently updated first.
//	@Tags			Sheets
//	@Produce		json
//	@Success		200	{array}	adminapi.TechnicalSheet
//	@Security		BearerAuth
//	@Router			/v1/sheets [get].
func (h *SheetListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sheets, err := h.SheetService.List(ctx)
	if err != nil {
		log.Error("failed to list sheets", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list sheets")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sheetViews(sheets))
}

type SheetCreateHandler struct {
	SheetService *service.SheetService
}

// ServeHTTP godoc
//
//	@Summary		Sheet Create Endpoint
//	@Description	Create a technical sheet. The slug is derived from the title and must be unique.
//	@Tags			Sheets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.TechnicalSheetRequest	true	"Sheet"
//	@Success		201		{object}	adminapi.TechnicalSheet
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/sheets [post].
func (h *SheetCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.TechnicalSheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sheet, err := h.SheetService.Create(ctx, req.Title, req.Category, req.Content, req.Published)
	if err != nil {
		writeSheetError(w, log, err, "Failed to create sheet")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sheetView(sheet))
}

type SheetGetHandler struct {
	SheetService *service.SheetService
}

// ServeHTTP godoc
//
//	@Summary		Sheet Get Endpoint
//	@Tags			Sheets
//	@Produce		json
//	@Param			id	path		string	true	"Sheet ID"
//	@Success		200	{object}	adminapi.TechnicalSheet
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/sheets/{id} [get].
func (h *SheetGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sheet, err := h.SheetService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeSheetError(w, log, err, "Failed to load sheet")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sheetView(sheet))
}

type SheetUpdateHandler struct {
	SheetService *service.SheetService
}

// ServeHTTP godoc
//
//	@Summary		Sheet Update Endpoint
//	@Description	Edit a sheet's title, category, content, or publication state. The slug never changes.
//	@Tags			Sheets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Sheet ID"
//	@Param			request	body		adminapi.TechnicalSheetRequest	true	"Sheet"
//	@Success		200		{object}	adminapi.TechnicalSheet
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/sheets/{id} [put].
func (h *SheetUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.TechnicalSheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sheet, err := h.SheetService.Update(ctx, r.PathValue("id"),
		req.Title, req.Category, req.Content, req.Published)
	if err != nil {
		writeSheetError(w, log, err, "Failed to update sheet")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sheetView(sheet))
}

type SheetDeleteHandler struct {
	SheetService *service.SheetService
}

// ServeHTTP godoc
//
//	@Summary		Sheet Delete Endpoint
//	@Tags			Sheets
//	@Produce		json
//	@Param			id	path		string	true	"Sheet ID"
//	@Success		204	{object}	nil
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/sheets/{id} [delete].
func (h *SheetDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.SheetService.Delete(ctx, r.PathValue("id")); err != nil {
		writeSheetError(w, log, err, "Failed to delete sheet")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// PublicSheetHandler serves published sheets to the marketing site without
// authentication.
type PublicSheetHandler struct {
	SheetService *service.SheetService
}

// HandleList godoc
//
//	@Summary		Published Sheets Endpoint
//	@Description	List published technical sheets for the public site, ordered by title.
//	@Tags			Public
//	@Produce		json
//	@Success		200	{array}	adminapi.TechnicalSheet
//	@Router			/v1/public/sheets [get].
func (h *PublicSheetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sheets, err := h.SheetService.ListPublished(ctx)
	if err != nil {
		log.Error("failed to list published sheets", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list sheets")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sheetViews(sheets))
}

// HandleGet godoc
//
//	@Summary		Published Sheet Endpoint
//	@Description	Fetch one published sheet by slug. Unpublished sheets are invisible here.
//	@Tags			Public
//	@Produce		json
//	@Param			slug	path		string	true	"Sheet slug"
//	@Success		200		{object}	adminapi.TechnicalSheet
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/public/sheets/{slug} [get].
func (h *PublicSheetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sheet, err := h.SheetService.GetPublishedBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		writeSheetError(w, log, err, "Failed to load sheet")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sheetView(sheet))
}

func writeSheetError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSheetNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Sheet not found")
	case errors.Is(err, service.ErrSheetSlugTaken):
		writeError(w, http.StatusConflict, "slug_taken", "A sheet with this title already exists")
	case errors.Is(err, service.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid_request", "Unknown category")
	case errors.Is(err, service.ErrInvalidSheet):
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid sheet")
	default:
		log.Error(fallback, "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}
