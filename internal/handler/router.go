package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-marketplace/internal/handler/api"
	"venue-marketplace/internal/handler/middleware"
	"venue-marketplace/internal/pkg/config"
)

// Route is one entry of the API route table. Feature modules contribute
// routes; NewRouter mounts them under /api.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, health *api.HealthHandler, routes []Route) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, health, routes)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.RequireJSONBody())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, health *api.HealthHandler, routes []Route) {
	engine.GET("/health", health.Health)
	engine.GET("/ready", health.Ready)

	addRoutes(engine.Group("/api"), routes)
}

func addRoutes(g *gin.RouterGroup, rs []Route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
