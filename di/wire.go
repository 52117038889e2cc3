//go:build wireinject
// +build wireinject

package di

import (
	"cardex/config"
	"cardex/infras/otel"
	"cardex/infras/postgres"
	"cardex/infras/redis"
	"cardex/infras/s3"
	"cardex/shared/cache"
	"cardex/transport/http"
	"cardex/transport/http/middleware"
	"cardex/transport/http/router"

	auditRepository "cardex/internal/domains/audit/repository"
	clientRepository "cardex/internal/domains/client/repository"
	clientService "cardex/internal/domains/client/service"
	noteRepository "cardex/internal/domains/note/repository"
	reportService "cardex/internal/domains/report/service"
	userRepository "cardex/internal/domains/user/repository"
	userService "cardex/internal/domains/user/service"

	clientHandler "cardex/internal/handlers/client"
	reportHandler "cardex/internal/handlers/report"
	userHandler "cardex/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var clientDomain = wire.NewSet(
	auditRepository.New,
	noteRepository.New,
	clientRepository.New,
	clientRepository.NewTraveler,
	clientService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	clientDomain,
	userDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clientHandler.New,
	userHandler.New,
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
