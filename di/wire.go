//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	housekeepingRepository "frontdesk/internal/domains/housekeeping/repository"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	notificationService "frontdesk/internal/domains/notification/service"
	paymentRepository "frontdesk/internal/domains/payment/repository"
	paymentService "frontdesk/internal/domains/payment/service"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"

	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	housekeepingHandler "frontdesk/internal/handlers/housekeeping"
	paymentHandler "frontdesk/internal/handlers/payment"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"
	staffHandler "frontdesk/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.NewProducer,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffRepository.NewStaffLog,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewBookingRoom,
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	staffDomain,
	authDomain,
	paymentDomain,
	housekeepingDomain,
	notificationDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	housekeepingHandler.New,
	staffHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
