package router

import (
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/report"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.AuthRole
}

// SetupRoutes registers guest routes openly and staff routes behind JWT auth and RBAC.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Group(func(staff chi.Router) {
			staff.Use(r.Auth.Auth, r.Auth.RBAC)

			r.DomainHandlers.Room.StaffRouter(staff)
			r.DomainHandlers.Booking.StaffRouter(staff)
			r.DomainHandlers.Report.StaffRouter(staff)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
