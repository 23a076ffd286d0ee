package http

import (
	"errors"
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type PasswordResetRequestHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Password Reset Request Endpoint
//	@Description	Issue a password reset token for an email. The response is 202 whether or not the email has an account; the token travels over the delivery channel, never this response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.PasswordResetRequest	true	"Email"
//	@Success		202		{object}	nil
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/password-reset [post].
func (h *PasswordResetRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.PasswordResetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// The token is deliberately discarded here; delivery happens out of
	// band. The handler must not behave differently for unknown emails.
	if _, err := h.IdentityService.RequestPasswordReset(ctx, req.Email); err != nil {
		log.Error("password reset request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Password reset failed")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusAccepted)
}

type PasswordResetConfirmHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Password Reset Confirm Endpoint
//	@Description	Redeem a reset token for a new password. Tokens are single use and expire after one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.PasswordResetConfirm	true	"Token and new password"
//	@Success		204		{object}	nil
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/password-reset/confirm [post].
func (h *PasswordResetConfirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.PasswordResetConfirm
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.IdentityService.ConfirmPasswordReset(ctx, req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			writeError(w, http.StatusBadRequest, "invalid_token", "Invalid or expired reset token")
			return
		}
		log.Error("password reset confirm failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Password reset failed")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
