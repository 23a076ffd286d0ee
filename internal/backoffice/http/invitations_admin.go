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

type InvitationIssueHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Issue Endpoint
//	@Description	Invite an email to join with a role. At most one pending invitation may exist per email, and registered emails cannot be invited.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.IssueInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	adminapi.Invitation		"the invitation, raw token included"
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req adminapi.IssueInvitationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inv, err := h.InvitationService.Issue(ctx, accountID, req.Email, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "Unknown role")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid invitation parameters")
		case errors.Is(err, service.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, "already_registered", "This email already has an account")
		case errors.Is(err, service.ErrInvitationPending):
			writeError(w, http.StatusConflict, "invitation_pending", "This email already has a pending invitation")
		default:
			log.Error("failed to issue invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to issue invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invitationView(inv))
}

type InvitationListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Pending Invitations Endpoint
//	@Description	List unredeemed, unexpired invitations, newest first. Raw tokens are included so admins can re-send onboarding links.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{array}		adminapi.Invitation
//	@Failure		401	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invitations, err := h.InvitationService.ListPending(ctx)
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list invitations")
		return
	}

	out := make([]adminapi.Invitation, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, invitationView(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type InvitationRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Revoke Endpoint
//	@Description	Delete an invitation in any state. Revoking an expired or redeemed invitation is valid cleanup.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string	true	"Invitation ID"
//	@Success		204	{object}	nil
//	@Failure		404	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.InvitationService.Revoke(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Invitation not found")
			return
		}
		log.Error("failed to revoke invitation", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to revoke invitation")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
