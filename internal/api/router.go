package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/0xzahra/gmn/internal/api/handler"
	"github.com/0xzahra/gmn/internal/api/middleware"
	"github.com/0xzahra/gmn/internal/repository"
	"github.com/0xzahra/gmn/internal/service"
)

// Deps carries the services and repositories the router wires up.
type Deps struct {
	Signals   *service.SignalService
	History   *repository.HistoryRepository
	Templates *repository.TemplateRepository
	Profiles  *repository.ProfileRepository
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(deps Deps, mode string, cors middleware.CORSConfig) *gin.Engine {
	// Set Gin mode
	switch mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cors))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	signalHandler := handler.NewSignalHandler(deps.Signals)
	historyHandler := handler.NewHistoryHandler(deps.History)
	templateHandler := handler.NewTemplateHandler(deps.Templates)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	tagsHandler := handler.NewTagsHandler()

	// Health check and metrics
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Signals
		v1.POST("/signals", signalHandler.Generate)
		v1.GET("/signals/current", signalHandler.Current)
		v1.POST("/signals/captions/:id/like", signalHandler.Like)
		v1.POST("/signals/captions/:id/dislike", signalHandler.Dislike)
		v1.POST("/signals/captions/:id/art", signalHandler.Art)
		v1.GET("/signals/captions/:id/share", signalHandler.Share)

		// History
		v1.GET("/history", historyHandler.List)

		// Templates
		v1.GET("/templates", templateHandler.List)
		v1.POST("/templates", templateHandler.Save)
		v1.DELETE("/templates/:id", templateHandler.Delete)

		// Profile
		v1.GET("/profile", profileHandler.Get)
		v1.PUT("/profile", profileHandler.Put)
		v1.DELETE("/profile", profileHandler.Delete)

		// Tags and quotes
		v1.GET("/tags", tagsHandler.List)
		v1.GET("/quote", tagsHandler.Quote)
	}

	return r
}
