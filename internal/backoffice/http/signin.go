package http

import (
	"errors"
	"net/http"

	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

type SignInHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Sign-In Endpoint
//	@Description	Verify admin credentials and mint a session token. Unknown emails and wrong passwords are indistinguishable in the response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminapi.SignInRequest	true	"Credentials"
//	@Success		200		{object}	adminapi.SessionResponse	"access_token, account"
//	@Failure		400		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	adminapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.IdentityService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
			return
		}
		log.Error("sign-in failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Sign-in failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.SessionResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		Account:     accountView(session.Account, session.Role),
	})
}

type SessionHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Session Endpoint
//	@Description	Return the account and current role behind the presented session token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	adminapi.Account		"the authenticated account"
//	@Failure		401	{object}	adminapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	row, err := h.AccountService.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
			return
		}
		log.Error("failed to load session account", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to load account")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountView(row.Account, row.Role))
}
