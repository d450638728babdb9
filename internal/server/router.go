package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelreservation/internal/middleware"
	"hotelreservation/internal/modules/booking"
	"hotelreservation/internal/modules/catalog"
	"hotelreservation/internal/modules/events"
)

type Deps struct {
	Bookings       *booking.Handler
	Rooms          *catalog.Handler
	Events         *events.Handler
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	StoreTimeout   time.Duration
	Log            *zap.Logger
}

// NewRouter assembles the engine: liveness at /, everything else under /api.
func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(d.AllowedOrigins),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hotel Reservation API is running")
	})

	api := r.Group("/api")
	if d.Events != nil {
		// long-lived; registered before the store timeout applies
		d.Events.RegisterRoutes(api)
	}

	timed := api.Group("")
	if d.StoreTimeout > 0 {
		timed.Use(middleware.StoreTimeout(d.StoreTimeout))
	}

	var createMiddleware []gin.HandlerFunc
	if d.RateLimiter != nil {
		createMiddleware = append(createMiddleware, d.RateLimiter.Middleware())
	}
	d.Bookings.RegisterRoutes(timed, createMiddleware...)
	d.Rooms.RegisterRoutes(timed)

	return r
}
