package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"braceria-backend/internal/handler/api"
	"braceria-backend/internal/handler/middleware"
	"braceria-backend/internal/infra/metrics"
	"braceria-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	System       *api.SystemHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder, h Handlers) {
	engine.SetHTMLTemplate(api.Templates())
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, recorder, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(recorder.Middleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
}

func setupRoutes(engine *gin.Engine, recorder *metrics.Recorder, h Handlers) {
	engine.GET("/", h.System.Info)
	engine.GET("/health", h.System.Health)
	engine.GET("/metrics", gin.WrapH(recorder.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	gestionale := engine.Group("/gestionale")
	{
		addRoutes(gestionale, []route{
			{Method: http.MethodGet, Path: "/get-disabled-time-slots/", Handler: h.Availability.DisabledTimeSlots},
		})
	}

	braceria := engine.Group("/api/braceria")
	{
		addRoutes(braceria, []route{
			{Method: http.MethodPost, Path: "/prenota", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/annulla/:id/:token", Handler: h.Reservation.Cancel},
		})
	}

	// legacy entry point of the first website release
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/prenotazioni", Handler: h.Reservation.Create},
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
