package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"neko-hotel/internal/handler/api"
	"neko-hotel/internal/handler/middleware"
	"neko-hotel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Calendar *api.CalendarHandler
	Customer *api.CustomerHandler
	History  *api.HistoryHandler
	Rate     *api.RateHandler
	Public   *api.PublicHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()}},
			})
		}

		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/rates", Handler: h.Public.ListRates},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Public.CreateBooking},
			})
		}

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireStaff())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Booking.ListReservations},
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Booking.CreateReservation},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Booking.GetReservation},
				{Method: http.MethodPut, Path: "/reservations/:id", Handler: h.Booking.UpdateReservation},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Booking.DeleteReservation},

				{Method: http.MethodGet, Path: "/calendar", Handler: h.Calendar.Month},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Calendar.DayAvailability},
				{Method: http.MethodGet, Path: "/rooms/options", Handler: h.Calendar.RoomOptions},

				{Method: http.MethodGet, Path: "/history", Handler: h.History.RecentEntries},

				{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.ListCustomers},
				{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.CreateCustomer},
				{Method: http.MethodGet, Path: "/customers/:id", Handler: h.Customer.GetCustomer},
				{Method: http.MethodPut, Path: "/customers/:id", Handler: h.Customer.UpdateCustomer},
				{Method: http.MethodDelete, Path: "/customers/:id", Handler: h.Customer.DeleteCustomer},
				{Method: http.MethodPost, Path: "/customers/:id/cats", Handler: h.Customer.AddCat},
				{Method: http.MethodDelete, Path: "/customers/:id/cats/:catId", Handler: h.Customer.RemoveCat},

				{Method: http.MethodGet, Path: "/rates", Handler: h.Rate.ListRates},
				{Method: http.MethodPut, Path: "/rates/:roomType", Handler: h.Rate.UpdateRate},
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
