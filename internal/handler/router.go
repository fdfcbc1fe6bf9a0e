package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"onvacation-backend/internal/handler/api"
	"onvacation-backend/internal/handler/middleware"
	"onvacation-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, agencyHandler *api.AgencyHandler, notificationHandler *api.NotificationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, agencyHandler, notificationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, agencyHandler *api.AgencyHandler, notificationHandler *api.NotificationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: reservationHandler.Search},
				{Method: http.MethodGet, Path: "/quota-month/:month", Handler: reservationHandler.ListByQuotaMonth},
				{Method: http.MethodGet, Path: "/report/by-agency", Handler: reservationHandler.CountByAgency},
				{Method: http.MethodPost, Path: "/import", Handler: reservationHandler.Import},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
			})
		}

		agencies := apiGroup.Group("/agencies")
		{
			addRoutes(agencies, []route{
				{Method: http.MethodPost, Path: "", Handler: agencyHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: agencyHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: agencyHandler.ListActive},
				{Method: http.MethodGet, Path: "/by-email", Handler: agencyHandler.GetByEmail},
				{Method: http.MethodGet, Path: "/by-name", Handler: agencyHandler.GetByName},
				{Method: http.MethodGet, Path: "/:id", Handler: agencyHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: agencyHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: agencyHandler.Delete},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/email", Handler: notificationHandler.SendEmail},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
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
