package http

import (
	"errors"
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	Create the first administrator of an empty directory; the email must match the configured super admin. Guarded by a pre-shared token and permanently closed once any account exists.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	adminapi.Account			"the created administrator"
//	@Failure		400		{object}	adminapi.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	adminapi.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	adminapi.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.BootstrapRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.BootstrapService.Bootstrap(ctx,
		req.Token, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled),
			errors.Is(err, service.ErrBootstrapUnauthorized):
			writeError(w, http.StatusForbidden, "forbidden", "Bootstrap not authorized")
		case errors.Is(err, service.ErrBootstrapAlready):
			writeError(w, http.StatusConflict, "already_bootstrapped", "Directory already has accounts")
		case errors.Is(err, service.ErrBootstrapEmailMismatch):
			writeError(w, http.StatusBadRequest, "invalid_request", "Bootstrap email must match the configured super admin")
		default:
			log.Error("bootstrap failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Bootstrap failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountView(account, domain.RoleAdministrator))
}
