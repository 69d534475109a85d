package routes

import (
	"time"

	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/config"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/handlers"
	"github.com/ZeinaWalidd/GraduationProjectBackend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	sosHandler *handlers.SOSHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/emergency-numbers", sosHandler.EmergencyNumbers)

	// SOS lifecycle - every route requires an authenticated identity
	jwt := middleware.JWTProtected(cfg)
	api.Get("/contacts", jwt, sosHandler.GetContacts)
	api.Post("/contacts", jwt, sosHandler.AddContact)
	api.Put("/contacts", jwt, sosHandler.ReplaceContacts)
	api.Delete("/contacts/:id", jwt, sosHandler.DeleteContact)
	api.Post("/alert", jwt, sosHandler.Alert)
	api.Post("/stop-sos", jwt, sosHandler.StopSOS)
	api.Get("/location-history/:alertId", jwt, sosHandler.LocationHistory)
}
