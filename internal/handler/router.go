package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkstay/internal/handler/api"
	"parkstay/internal/handler/middleware"
	"parkstay/internal/metrics"
	"parkstay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Reservation *api.ReservationHandler
	Unit        *api.UnitHandler
	User        *api.UserHandler
	Dashboard   *api.DashboardHandler
}

func NewHandlers(
	reservation *api.ReservationHandler,
	unit *api.UnitHandler,
	user *api.UserHandler,
	dashboard *api.DashboardHandler,
) Handlers {
	return Handlers{Reservation: reservation, Unit: unit, User: user, Dashboard: dashboard}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ActorMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/snapshot", Handler: h.Dashboard.Snapshot},
			{Method: http.MethodPost, Path: "/normalize/:sheet", Handler: h.Dashboard.Normalize},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
			{Method: http.MethodGet, Path: "/today", Handler: h.Dashboard.Today},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Dashboard.Calendar},
		})

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/conflicts", Handler: h.Reservation.CheckConflict},
				{Method: http.MethodGet, Path: "/export", Handler: h.Reservation.ExportReservations},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.UpdateReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
				{Method: http.MethodDelete, Path: "", Handler: h.Reservation.ResetReservations},
			})
		}

		units := apiGroup.Group("/units")
		{
			addRoutes(units, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Unit.CreateUnit},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Unit.UpdateUnit},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Unit.DeleteUnit},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: h.User.RegisterUser},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.User.ApproveUser},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.DeleteUser},
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
