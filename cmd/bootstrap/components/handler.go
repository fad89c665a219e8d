package components

import (
	"venue-marketplace/internal/handler"
	"venue-marketplace/internal/handler/api"
	"venue-marketplace/internal/handler/middleware"
	"venue-marketplace/internal/pkg/clock"
	"venue-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		clock.NewRealClock,
		api.NewHealthHandler,
	),
	fx.Invoke(mountRouter),
)

// RouterParams collects the route table. Feature modules add entries with
// fx.Annotate(newRoutes, fx.ResultTags(`group:"routes,flatten"`)).
type RouterParams struct {
	fx.In

	Engine *gin.Engine
	Config config.Config
	Logger *middleware.Logger
	Health *api.HealthHandler
	Routes []handler.Route `group:"routes"`
}

func mountRouter(p RouterParams) {
	handler.NewRouter(p.Engine, p.Config, p.Logger, p.Health, p.Routes)
}
