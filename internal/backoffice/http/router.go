package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/service"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
	"github.com/aikidoconnect/backoffice/pkg/jwtx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"

	_ "github.com/aikidoconnect/backoffice/api/backoffice" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	IdentityService   *service.IdentityService
	BootstrapService  *service.BootstrapService
	InvitationService *service.InvitationService
	AccountService    *service.AccountService
	AuthorizeService  *service.AuthorizeService
	SheetService      *service.SheetService
	VideoService      *service.VideoService
	StatsService      *service.StatsService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBootstrap()
	r.registerAuth()
	r.registerInvitations()
	r.registerAccounts()
	r.registerSheets()
	r.registerVideos()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Aikido Connect Backoffice API
//	@version		0.1.0
//	@description	Admin backoffice for the Aikido Connect site: invitation-based onboarding, role management, and content administration.
//	@description
//	@description				Sessions are Ed25519-signed JWTs. Authorization is decided per request against the current role in the directory, never against the token's role claim.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// requireCapability gates a route on the account's current role. The role is
// read from the directory on every request, so revocations apply immediately.
func (r *Router) requireCapability(cap domain.Capability) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			accountID, ok := requireAccountID(w, req)
			if !ok {
				return
			}

			err := r.AuthorizeService.Require(req.Context(), accountID, cap)
			switch {
			case err == nil:
				next.ServeHTTP(w, req)
			case errors.Is(err, service.ErrAccountNotFound):
				// Token outlived the account.
				writeError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
			case errors.Is(err, service.ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden", "Your role does not allow this action")
			default:
				writeError(w, http.StatusInternalServerError, "server_error", "Authorization check failed")
			}
		})
	}
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerAuth() {
	signIn := &SignInHandler{IdentityService: r.IdentityService}
	session := &SessionHandler{AccountService: r.AccountService}
	resetRequest := &PasswordResetRequestHandler{IdentityService: r.IdentityService}
	resetConfirm := &PasswordResetConfirmHandler{IdentityService: r.IdentityService}

	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(signIn, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("GET /v1/auth/session",
		httpx.Chain(session,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/password-reset",
		httpx.Chain(resetRequest, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /v1/auth/password-reset/confirm",
		httpx.Chain(resetConfirm, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerInvitations() {
	issue := &InvitationIssueHandler{InvitationService: r.InvitationService}
	list := &InvitationListHandler{InvitationService: r.InvitationService}
	revoke := &InvitationRevokeHandler{InvitationService: r.InvitationService}
	lookup := &InvitationLookupHandler{InvitationService: r.InvitationService}
	redeem := &InvitationRedeemHandler{
		InvitationService: r.InvitationService,
		IdentityService:   r.IdentityService,
	}

	manageUsers := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		r.requireCapability(domain.CapManageUsers),
	}

	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(issue, append(manageUsers, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(list, append(manageUsers, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		httpx.Chain(revoke, append(manageUsers, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)

	// Onboarding endpoints: no session yet, rate limited by IP.
	r.Mux.Handle("GET /v1/invitations/lookup",
		httpx.Chain(lookup, httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("POST /v1/invitations/redeem",
		httpx.Chain(redeem, httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerAccounts() {
	list := &AccountListHandler{AccountService: r.AccountService}
	updateRole := &AccountRoleHandler{AccountService: r.AccountService}
	del := &AccountDeleteHandler{AccountService: r.AccountService}

	manageUsers := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		r.requireCapability(domain.CapManageUsers),
	}

	r.Mux.Handle("GET /v1/accounts",
		httpx.Chain(list, append(manageUsers, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("PUT /v1/accounts/{id}/role",
		httpx.Chain(updateRole, append(manageUsers, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("DELETE /v1/accounts/{id}",
		httpx.Chain(del, append(manageUsers, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
}

func (r *Router) registerSheets() {
	list := &SheetListHandler{SheetService: r.SheetService}
	create := &SheetCreateHandler{SheetService: r.SheetService}
	get := &SheetGetHandler{SheetService: r.SheetService}
	update := &SheetUpdateHandler{SheetService: r.SheetService}
	del := &SheetDeleteHandler{SheetService: r.SheetService}
	public := &PublicSheetHandler{SheetService: r.SheetService}

	editContent := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		r.requireCapability(domain.CapEditContent),
	}

	r.Mux.Handle("GET /v1/sheets",
		httpx.Chain(list, append(editContent, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("POST /v1/sheets",
		httpx.Chain(create, append(editContent, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("GET /v1/sheets/{id}",
		httpx.Chain(get, append(editContent, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("PUT /v1/sheets/{id}",
		httpx.Chain(update, append(editContent, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("DELETE /v1/sheets/{id}",
		httpx.Chain(del, append(editContent, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)

	// Public read-only surface for the marketing site.
	r.Mux.Handle("GET /v1/public/sheets",
		httpx.Chain(http.HandlerFunc(public.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("GET /v1/public/sheets/{slug}",
		httpx.Chain(http.HandlerFunc(public.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
}

func (r *Router) registerVideos() {
	list := &VideoListHandler{VideoService: r.VideoService}
	create := &VideoCreateHandler{VideoService: r.VideoService}
	get := &VideoGetHandler{VideoService: r.VideoService}
	update := &VideoUpdateHandler{VideoService: r.VideoService}
	del := &VideoDeleteHandler{VideoService: r.VideoService}

	manageVideos := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		r.requireCapability(domain.CapManageVideos),
	}

	r.Mux.Handle("GET /v1/videos",
		httpx.Chain(list, append(manageVideos, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("POST /v1/videos",
		httpx.Chain(create, append(manageVideos, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("GET /v1/videos/{id}",
		httpx.Chain(get, append(manageVideos, httpx.RateLimitByAccount(httpx.LenientLimit))...),
	)
	r.Mux.Handle("PUT /v1/videos/{id}",
		httpx.Chain(update, append(manageVideos, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
	r.Mux.Handle("DELETE /v1/videos/{id}",
		httpx.Chain(del, append(manageVideos, httpx.RateLimitByAccount(httpx.ModerateLimit))...),
	)
}

func (r *Router) registerStats() {
	stats := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(stats,
			httpx.AuthnMiddleware(r.verifier),
			r.requireCapability(domain.CapViewStatistics),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	livez := &LivezHandler{BuildVersion: r.buildVersion, StartTime: r.startTime}
	readyz := &ReadyzHandler{Store: r.store}

	r.Mux.Handle("GET /livez", livez)
	r.Mux.Handle("GET /readyz", readyz)
}
