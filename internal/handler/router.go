package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/api"
	"clinic-scheduler/internal/handler/middleware"
	"clinic-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Selection    *api.SelectionHandler
	Booking      *api.BookingHandler
	Appointment  *api.AppointmentHandler
	Directory    *api.DirectoryHandler
	Admin        *api.AdminHandler
	WebSocket    *api.WebSocketHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws", h.WebSocket.Serve)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	doctorOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleDoctor)}
	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// public reads
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/providers/:id/months/:month/slots", Handler: h.Availability.ListSlots},
			{Method: http.MethodGet, Path: "/providers/:id/months/:month/grid", Handler: h.Availability.MonthGrid},
			{Method: http.MethodGet, Path: "/providers/:id/months/:month/template", Handler: h.Availability.GetTemplate},
			{Method: http.MethodGet, Path: "/templates/default", Handler: h.Availability.DefaultTemplate},
			{Method: http.MethodGet, Path: "/departments", Handler: h.Directory.ListDepartments},
			{Method: http.MethodGet, Path: "/departments/:id", Handler: h.Directory.GetDepartment},
			{Method: http.MethodGet, Path: "/doctors", Handler: h.Directory.ListDoctors},
			{Method: http.MethodGet, Path: "/doctors/:id", Handler: h.Directory.GetDoctor},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodPut, Path: "/providers/:id/months/:month/slots", Handler: h.Availability.RegenerateMonth, Mw: doctorOnly},

				{Method: http.MethodPut, Path: "/selection", Handler: h.Selection.Select},
				{Method: http.MethodGet, Path: "/selection", Handler: h.Selection.Get},
				{Method: http.MethodDelete, Path: "/selection", Handler: h.Selection.Clear},
				{Method: http.MethodPost, Path: "/slots/:id/book", Handler: h.Booking.Book},

				{Method: http.MethodGet, Path: "/appointments", Handler: h.Appointment.List},
				{Method: http.MethodGet, Path: "/appointments/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPatch, Path: "/appointments/:id/status", Handler: h.Appointment.UpdateStatus},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: h.Appointment.Delete, Mw: doctorOnly},

				{Method: http.MethodPost, Path: "/departments", Handler: h.Directory.CreateDepartment, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/departments/:id", Handler: h.Directory.UpdateDepartment, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/departments/:id", Handler: h.Directory.DeleteDepartment, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/doctors", Handler: h.Directory.CreateDoctor, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/doctors/:id", Handler: h.Directory.UpdateDoctor, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/doctors/:id", Handler: h.Directory.DeleteDoctor, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/patients", Handler: h.Directory.ListPatients, Mw: doctorOnly},
				{Method: http.MethodPost, Path: "/patients", Handler: h.Directory.CreatePatient, Mw: doctorOnly},
				{Method: http.MethodGet, Path: "/patients/me", Handler: h.Directory.MyPatientProfile},
				{Method: http.MethodGet, Path: "/patients/:id", Handler: h.Directory.GetPatient},
				{Method: http.MethodPatch, Path: "/patients/:id", Handler: h.Directory.UpdatePatient},
				{Method: http.MethodDelete, Path: "/patients/:id", Handler: h.Directory.DeletePatient, Mw: adminOnly},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard/stats", Handler: h.Admin.DashboardStats},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
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
