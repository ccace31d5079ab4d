// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/ai"
	"wanderlust/internal/http/handlers"
	"wanderlust/internal/http/middleware"
	"wanderlust/internal/modules/plan"
	"wanderlust/internal/modules/trips"
)

type RouterDeps struct {
	Plan     *plan.Service
	Trips    *trips.Service
	Usage    handlers.Quota
	AI       ai.Provider
	MapImage handlers.MapImageFetcher

	// GeneratePerMinute caps plan generations across the instance; zero
	// disables the limiter.
	GeneratePerMinute int
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(deps.Plan, deps.Usage, deps.AI)
	generate := r.Group("/api/plans")
	if deps.GeneratePerMinute > 0 {
		generate.Use(middleware.RateLimit(deps.GeneratePerMinute))
	}
	generate.POST("", planHandler.Generate)
	r.POST("/api/plans/cancel", planHandler.Cancel)
	r.POST("/api/plans/render", planHandler.Render)
	r.GET("/api/tips", planHandler.Tip)
	r.POST("/api/chat", planHandler.Chat)

	tripsHandler := handlers.NewTripsHandler(deps.Trips, deps.MapImage)
	r.GET("/api/trips", tripsHandler.List)
	r.POST("/api/trips", tripsHandler.Save)
	r.DELETE("/api/trips/:id", tripsHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
