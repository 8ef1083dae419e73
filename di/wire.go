//go:build wireinject
// +build wireinject

package di

import (
	"pousada/config"
	"pousada/infras/otel"
	"pousada/infras/redis"
	"pousada/infras/store"
	"pousada/shared/cache"
	"pousada/transport/http"
	"pousada/transport/http/middleware"
	"pousada/transport/http/router"

	rateRepository "pousada/internal/domains/rate/repository"
	rateService "pousada/internal/domains/rate/service"
	reportService "pousada/internal/domains/report/service"
	reservationRepository "pousada/internal/domains/reservation/repository"
	reservationService "pousada/internal/domains/reservation/service"
	roomRepository "pousada/internal/domains/room/repository"
	roomService "pousada/internal/domains/room/service"

	rateHandler "pousada/internal/handlers/rate"
	reportHandler "pousada/internal/handlers/report"
	reservationHandler "pousada/internal/handlers/reservation"
	roomHandler "pousada/internal/handlers/room"
	systemHandler "pousada/internal/handlers/system"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	store.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var rateDomain = wire.NewSet(
	rateRepository.New,
	rateService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	roomDomain,
	rateDomain,
	reservationDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	rateHandler.New,
	reservationHandler.New,
	reportHandler.New,
	systemHandler.New,
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
