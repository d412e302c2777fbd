package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stable-booking-api/internal/handler/api"
	"stable-booking-api/internal/handler/middleware"
	"stable-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Care         *api.CareHandler
	Service      *api.ServiceHandler
	Notification *api.NotificationHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetByID},
				{Method: http.MethodPost, Path: "/care-bookings", Handler: h.Care.Create},
				{Method: http.MethodGet, Path: "/care-bookings", Handler: h.Care.ListMine},
				{Method: http.MethodGet, Path: "/care-bookings/:id", Handler: h.Care.GetByID},
				{Method: http.MethodGet, Path: "/services", Handler: h.Service.List},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.List},
				{Method: http.MethodPatch, Path: "/notifications/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/notifications/read-all", Handler: h.Notification.MarkAllRead},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
				{Method: http.MethodGet, Path: "/bookings/pending", Handler: h.Admin.PendingBookings},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateProxy},
				{Method: http.MethodPost, Path: "/bookings/:id/approve", Handler: h.Admin.ApproveBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/deny", Handler: h.Admin.DenyBooking},
				{Method: http.MethodPost, Path: "/care-bookings", Handler: h.Care.CreateProxy},
				{Method: http.MethodPost, Path: "/care-bookings/:id/approve", Handler: h.Admin.ApproveCareBooking},
				{Method: http.MethodPost, Path: "/care-bookings/:id/deny", Handler: h.Admin.DenyCareBooking},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.Users},
				{Method: http.MethodPost, Path: "/users/:id/approve", Handler: h.Admin.ApproveUser},
				{Method: http.MethodPost, Path: "/users/:id/deny", Handler: h.Admin.DenyUser},
				{Method: http.MethodPost, Path: "/users/:id/suspend", Handler: h.Admin.SuspendUser},
				{Method: http.MethodPost, Path: "/users/:id/reactivate", Handler: h.Admin.ReactivateUser},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
				{Method: http.MethodPost, Path: "/services", Handler: h.Service.Create},
				{Method: http.MethodPut, Path: "/services/:id", Handler: h.Service.Update},
				{Method: http.MethodPatch, Path: "/services/:id/active", Handler: h.Service.SetActive},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
