package router

import (
	"github.com/go-chi/chi/v5"

	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/housekeeping"
	"frontdesk/internal/handlers/payment"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/staff"
	"frontdesk/transport/http/middleware"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Guest        guest.Handler
	Room         room.Handler
	Booking      booking.Handler
	Payment      payment.Handler
	Housekeeping housekeeping.Handler
	Staff        staff.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	authRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.app.Tracing)
	router.Use(r.app.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.authRole.APIKey)
			protected.Use(r.authRole.Auth)
			protected.Use(r.authRole.RBAC)

			r.DomainHandlers.Auth.AuthenticatedRouter(protected)
			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Payment.Router(protected)
			r.DomainHandlers.Housekeeping.Router(protected)
			r.DomainHandlers.Staff.Router(protected)
			r.DomainHandlers.Report.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
	}
}
