package router

import (
	"github.com/go-chi/chi/v5"

	"pousada/internal/handlers/rate"
	"pousada/internal/handlers/report"
	"pousada/internal/handlers/reservation"
	"pousada/internal/handlers/room"
	"pousada/internal/handlers/system"
)

type DomainHandlers struct {
	Room        room.Handler
	Rate        rate.Handler
	Reservation reservation.Handler
	Report      report.Handler
	System      system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/health", r.DomainHandlers.System.HealthCheck)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Rate.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.System.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
