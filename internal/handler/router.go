package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beautify-api/internal/handler/api"
	"beautify-api/internal/handler/middleware"
	"beautify-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Service      *api.ServiceHandler
	Payment      *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
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
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.ListServices},
			})

			adminServices := services.Group("")
			adminServices.Use(authMiddleware.RequireAuth())
			addRoutes(adminServices, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Service.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Service.UpdateService},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/rules", Handler: h.Availability.ListRules},
			})

			adminAvailability := availability.Group("")
			adminAvailability.Use(authMiddleware.RequireAuth())
			addRoutes(adminAvailability, []route{
				{Method: http.MethodPut, Path: "/rules/:weekday", Handler: h.Availability.UpsertRule},
				{Method: http.MethodGet, Path: "/timeoff", Handler: h.Availability.ListTimeOff},
				{Method: http.MethodPost, Path: "/timeoff", Handler: h.Availability.AddTimeOff},
				{Method: http.MethodDelete, Path: "/timeoff/:id", Handler: h.Availability.RemoveTimeOff},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.GetSlots},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
			})

			adminBookings := bookings.Group("")
			adminBookings.Use(authMiddleware.RequireAuth())
			addRoutes(adminBookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.UpdateBookingStatus},
			})
		}

		apiGroup.POST("/quotes", h.Booking.QuotePrice)

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/mpesa", Handler: h.Payment.InitiateMpesa},
				{Method: http.MethodPost, Path: "/mpesa/callback", Handler: h.Payment.MpesaCallback},
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
