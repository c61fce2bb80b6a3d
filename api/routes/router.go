// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"aerobook/internal/ancillaries"
	"aerobook/internal/booking"
	"aerobook/internal/gds"
	"aerobook/internal/notifications"
	"aerobook/internal/pricing"
	"aerobook/internal/session"
	"aerobook/internal/shared/config"
	"aerobook/internal/shared/database"
	"aerobook/internal/shared/middleware"
	"aerobook/internal/trips"
	"aerobook/pkg/cache"
	"aerobook/pkg/logger"
	"aerobook/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
	log      *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// Shared infrastructure
	cacheSvc := cache.NewService(r.db.Redis)
	sessions := session.NewRedisStore(cacheSvc, r.config.Redis.SessionTTL)
	gdsClient := gds.NewClient(gds.Config{
		BaseURL: r.config.Provider.BaseURL,
		Timeout: r.config.Provider.Timeout,
	})

	// Services
	tripSvc := trips.NewService(sessions)
	ancillarySvc := ancillaries.NewService(tripSvc, gdsClient, gdsClient, sessions)
	pricingSvc := pricing.NewService(tripSvc, ancillarySvc, gdsClient, r.config.Pricing)
	bookingSvc := booking.NewService(
		tripSvc, pricingSvc, gdsClient, gdsClient,
		booking.NewRepository(r.db.PostgreSQL),
		r.producer,
		r.config.Booking.InterLegDelay,
		r.log,
	)

	rateLimiter := ratelimit.NewRateLimiter(r.db.Redis, &ratelimit.Config{
		Enabled:         r.config.RateLimit.Enabled,
		WindowDuration:  r.config.RateLimit.WindowDuration,
		DefaultRequests: r.config.RateLimit.DefaultRequests,
		PublicRequests:  r.config.RateLimit.PublicRequests,
		BookingRequests: r.config.RateLimit.BookingRequests,
		HealthRequests:  r.config.RateLimit.HealthRequests,
		WhitelistedIPs:  r.config.RateLimit.WhitelistedIPs,
	})

	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.SessionAuth(r.config))
	api.Use(rateLimiter.Middleware(ratelimit.RateLimitTypeDefault))
	{
		trips.SetupTripRoutes(api, trips.NewController(tripSvc))
		ancillaries.SetupAncillaryRoutes(api, ancillaries.NewController(ancillarySvc))
		pricing.SetupPricingRoutes(api, pricing.NewController(pricingSvc))

		bookingGroup := api.Group("")
		bookingGroup.Use(rateLimiter.Middleware(ratelimit.RateLimitTypeBooking))
		booking.SetupBookingRoutes(bookingGroup, booking.NewController(bookingSvc))
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "aerobook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "aerobook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
