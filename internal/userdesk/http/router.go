package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/service"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/web"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/userdesk/api/userdesk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// apiPrefix is the alternate mount point for the JSON API routes.
const apiPrefix = "/api"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookie       httpx.SessionCookie
	pages        *web.Renderer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionService *service.SessionService
	UserService    *service.UserService
}

func NewRouter(
	cookie httpx.SessionCookie,
	pages *web.Renderer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookie:       cookie,
		pages:        pages,
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
	r.registerSession()
	r.registerUsers()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Userdesk API
//	@version		0.1.0
//	@description	Session-authenticated user management. Log in at /token to receive an HttpOnly session cookie,
//	@description	then call the user and admin endpoints with it. Every API route is also served under /api.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/userdesk
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						access_token
//	@description				Signed session token set by POST /token.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handleAPI registers h at pattern and again under /api.
func (r *Router) handleAPI(method, path string, h http.Handler) {
	r.Mux.Handle(method+" "+path, h)
	r.Mux.Handle(method+" "+apiPrefix+path, h)
}

func (r *Router) apiAuthn() httpx.Middleware {
	return r.authn(denyAPI)
}

// authn resolves the session cookie to a user and tags the request logger
// with the user id. deny handles requests without a usable session.
func (r *Router) authn(deny httpx.DenyFunc) httpx.Middleware {
	resolve := httpx.AuthnMiddleware[domain.User](r.cookie, r.SessionService.Authenticate, deny)
	return func(next http.Handler) http.Handler {
		return resolve(tagUser(next))
	}
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService, Cookie: r.cookie}

	r.Mux.Handle("POST /token", http.HandlerFunc(h.HandleLogin))
	r.handleAPI(http.MethodPost, "/logout", httpx.Chain(http.HandlerFunc(h.HandleLogout), r.apiAuthn()))
	r.handleAPI(http.MethodGet, "/me", httpx.Chain(http.HandlerFunc(h.HandleMe), r.apiAuthn()))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	admin := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.apiAuthn(),
			httpx.Require(isAdmin, denyForbidden),
		)
	}

	r.handleAPI(http.MethodGet, "/admin/users", admin(h.HandleList))
	r.handleAPI(http.MethodPost, "/admin/users", admin(h.HandleCreate))
	r.handleAPI(http.MethodPut, "/admin/users/{id}", admin(h.HandleUpdate))
	r.handleAPI(http.MethodDelete, "/admin/users/{id}", admin(h.HandleDelete))
}

func (r *Router) registerPages() {
	h := &PagesHandler{Pages: r.pages}

	r.Mux.Handle("GET /{$}", http.HandlerFunc(h.HandleIndex))
	r.Mux.Handle("GET /authorized/{page...}",
		httpx.Chain(http.HandlerFunc(h.HandleAuthorized),
			r.authn(r.denyPage),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
