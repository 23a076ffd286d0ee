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

type AccountListHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Account Directory Endpoint
//	@Description	List every account with its current role, newest first.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{array}		adminapi.Account
//	@Failure		401	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts [get].
func (h *AccountListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rows, err := h.AccountService.List(ctx)
	if err != nil {
		log.Error("failed to list accounts", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list accounts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountViews(rows))
}

type AccountRoleHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Role Update Endpoint
//	@Description	Change an account's role. Takes effect on the subject's next request. The super admin's role can never be changed.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Account ID"
//	@Param			request	body		adminapi.UpdateRoleRequest	true	"New role"
//	@Success		204		{object}	nil
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id}/role [put].
func (h *AccountRoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.UpdateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.AccountService.UpdateRole(ctx, r.PathValue("id"), domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "Unknown role")
		case errors.Is(err, service.ErrSuperAdminImmutable):
			writeError(w, http.StatusForbidden, "forbidden", "The super admin account cannot be modified")
		case errors.Is(err, service.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Account not found")
		default:
			log.Error("failed to update role", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to update role")
		}
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

type AccountDeleteHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Account Delete Endpoint
//	@Description	Remove an account and its role assignment. The super admin cannot be deleted.
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		string	true	"Account ID"
//	@Success		204	{object}	nil
//	@Failure		403	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [delete].
func (h *AccountDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.AccountService.Delete(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuperAdminImmutable):
			writeError(w, http.StatusForbidden, "forbidden", "The super admin account cannot be modified")
		case errors.Is(err, service.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Account not found")
		default:
			log.Error("failed to delete account", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to delete account")
		}
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
