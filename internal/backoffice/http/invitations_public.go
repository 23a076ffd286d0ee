package http

import (
	"errors"
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type InvitationLookupHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Lookup Endpoint
//	@Description	Resolve an invitation token for the onboarding page. Malformed, unknown, expired, and redeemed tokens are indistinguishable: all yield 404.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string	true	"Invitation token (64 lowercase hex chars)"
//	@Success		200		{object}	adminapi.InvitationLookup
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/lookup [get].
func (h *InvitationLookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	inv, err := h.InvitationService.Lookup(ctx, r.URL.Query().Get("token"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			writeError(w, http.StatusNotFound, "invalid_token", "Invalid or expired invitation")
			return
		}
		log.Error("invitation lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Lookup failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.InvitationLookup{
		Email:     inv.Email,
		Role:      string(inv.Role),
		ExpiresAt: inv.ExpiresAt,
	})
}

type InvitationRedeemHandler struct {
	InvitationService *service.InvitationService
	IdentityService   *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Redeem Endpoint
//	@Description	Exchange a valid invitation token for a new account carrying the invited role, plus a live session. Tokens are single use; concurrent redemptions resolve to exactly one account.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.RedeemInvitationRequest	true	"Token and profile"
//	@Success		201		{object}	adminapi.SessionResponse	"session for the created account"
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/redeem [post].
func (h *InvitationRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.RedeemInvitationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// The role comes from the invitation on the server side, never from the
	// request.
	account, role, err := h.InvitationService.Redeem(ctx, req.Token, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			writeError(w, http.StatusNotFound, "invalid_token", "Invalid or expired invitation")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			writeError(w, http.StatusBadRequest, "invalid_request", "Missing or malformed fields")
		case errors.Is(err, service.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, "already_registered", "This email already has an account")
		default:
			log.Error("failed to redeem invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Redemption failed")
		}
		return
	}

	// The new member walks away signed in; no second round trip.
	session, err := h.IdentityService.MintSession(ctx, account, role)
	if err != nil {
		log.Error("failed to mint session after redemption", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Redemption failed")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, adminapi.SessionResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		Account:     accountView(account, role),
	})
}
