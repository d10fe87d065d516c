package routes

import (
	"net/http"

	"github.com/zatekoja/hospitalservices/internal/api/handlers"
	"github.com/zatekoja/hospitalservices/internal/api/middleware"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Health   *handlers.HealthHandler
	Catalog  *handlers.CatalogHandler
	Comments *handlers.CommentHandler
	Ranks    *handlers.RankHandler
	Admin    *handlers.AdminHandler
}

// Router holds all route handlers
type Router struct {
	mux      *http.ServeMux
	handlers Handlers

	auth           *middleware.Authenticator
	limiter        *middleware.RateLimiter
	cache          *middleware.CacheMiddleware
	metrics        *observability.Metrics
	allowedOrigins []string
}

// NewRouter creates a new router. cache and limiter may be nil.
func NewRouter(
	h Handlers,
	auth *middleware.Authenticator,
	limiter *middleware.RateLimiter,
	cache *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		handlers:       h,
		auth:           auth,
		limiter:        limiter,
		cache:          cache,
		metrics:        metrics,
		allowedOrigins: allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", r.handlers.Health.Health)

	// Catalog
	r.mux.HandleFunc("GET /api/categories", r.handlers.Catalog.ListCategories)
	r.mux.HandleFunc("GET /api/categories/{slug}", r.handlers.Catalog.GetCategory)
	r.mux.HandleFunc("GET /api/hospitals", r.handlers.Catalog.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/{slug}", r.handlers.Catalog.GetHospital)
	r.mux.HandleFunc("GET /api/services", r.handlers.Catalog.ListServices)
	r.mux.HandleFunc("GET /api/services/{id}", r.handlers.Catalog.GetService)

	// Comments and ranks, under both kinds of target
	r.attachmentRoutes("/api/hospitals/{slug}", entities.TargetHospital)
	r.attachmentRoutes("/api/services/{id}", entities.TargetService)

	// Administration
	admin := r.handlers.Admin
	r.mux.HandleFunc("POST /api/admin/categories", r.auth.RequireAdmin(admin.CreateCategory))
	r.mux.HandleFunc("PATCH /api/admin/categories/{slug}", r.auth.RequireAdmin(admin.UpdateCategory))
	r.mux.HandleFunc("DELETE /api/admin/categories/{slug}", r.auth.RequireAdmin(admin.DeleteCategory))
	r.mux.HandleFunc("POST /api/admin/hospitals", r.auth.RequireAdmin(admin.CreateHospital))
	r.mux.HandleFunc("PATCH /api/admin/hospitals/{slug}", r.auth.RequireAdmin(admin.UpdateHospital))
	r.mux.HandleFunc("DELETE /api/admin/hospitals/{slug}", r.auth.RequireAdmin(admin.DeleteHospital))
	r.mux.HandleFunc("POST /api/admin/services", r.auth.RequireAdmin(admin.CreateService))
	r.mux.HandleFunc("PATCH /api/admin/services/{id}", r.auth.RequireAdmin(admin.UpdateService))
	r.mux.HandleFunc("DELETE /api/admin/services/{id}", r.auth.RequireAdmin(admin.DeleteService))

	// The outermost middleware is applied last. CORS wraps everything so
	// cache hits carry its headers too.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cache != nil {
		handler = r.cache.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

func (r *Router) attachmentRoutes(base string, kind entities.TargetKind) {
	comments, ranks := r.handlers.Comments, r.handlers.Ranks
	handle := func(pattern string, h http.HandlerFunc) {
		r.mux.HandleFunc(pattern, middleware.LogTarget(kind, h))
	}

	handle("GET "+base+"/comments", comments.List(kind))
	handle("POST "+base+"/comments", r.write(comments.Create(kind)))
	handle("PATCH "+base+"/comments/{commentID}", r.write(comments.Update(kind)))
	handle("DELETE "+base+"/comments/{commentID}", r.write(comments.Delete(kind)))

	handle("GET "+base+"/ranks", ranks.List(kind))
	handle("POST "+base+"/ranks", r.write(ranks.Create(kind)))
	handle("PATCH "+base+"/ranks/{rankID}", r.write(ranks.Update(kind)))
	handle("DELETE "+base+"/ranks/{rankID}", r.write(ranks.Delete(kind)))
}

// write guards a user write: a valid token first, then the rate limit
func (r *Router) write(next http.HandlerFunc) http.HandlerFunc {
	return r.auth.RequireAuth(r.limiter.Limit(next))
}
