// Package api exposes the platform's record and payout operations over HTTP.
package api

import (
	"ringside/service"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Server wires the HTTP routes onto the domain services
type Server struct {
	app     *fiber.App
	records service.RecordService
	payouts service.PayoutService
}

// NewServer creates the HTTP server and registers all routes
func NewServer(records service.RecordService, payouts service.PayoutService, limiter service.RateLimiter, rateLimitPerMinute int) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:     app,
		records: records,
		payouts: payouts,
	}

	app.Use(RateLimitMiddleware(limiter, rateLimitPerMinute))

	fighters := app.Group("/fighters")
	fighters.Post("/:id/record/refresh", s.RefreshRecord)
	fighters.Put("/:id/record", s.SetRecord)
	fighters.Post("/:id/history", s.AddFightHistory)
	fighters.Get("/:id/balance", s.GetFighterBalance)

	app.Put("/history/:id", s.UpdateFightHistory)
	app.Delete("/history/:id", s.DeleteFightHistory)

	app.Post("/bouts/:id/resolve", s.ResolveBout)

	app.Get("/organizers/:id/balance", s.GetOrganizerBalance)

	payoutRoutes := app.Group("/payouts")
	payoutRoutes.Post("/", s.RequestPayout)
	payoutRoutes.Post("/:id/process", s.ProcessPayout)

	return s
}

// Listen starts serving on the given address. Blocks until Shutdown.
func (s *Server) Listen(addr string) error {
	log.WithField("addr", addr).Info("HTTP server listening")
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}
