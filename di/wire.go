//go:build wireinject
// +build wireinject

package di

import (
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/redis"
	itineraryHandler "tripdesk/internal/handlers/itinerary"
	portalHandler "tripdesk/internal/handlers/portal"
	"tripdesk/internal/render"
	"tripdesk/shared/cache"
	"tripdesk/transport/http"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/router"

	travelRepository "tripdesk/internal/domains/travel/repository"
	travelService "tripdesk/internal/domains/travel/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var travelDomain = wire.NewSet(
	travelRepository.New,
	travelService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	render.New,
	itineraryHandler.New,
	portalHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		travelDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
