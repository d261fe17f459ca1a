//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"wld/internal"
	"wld/internal/controllers"
	"wld/internal/providers"
	"wld/internal/services"
	"wld/internal/structures"
	"wld/internal/winelog"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewGithubClient,

		winelog.NewStore,
		services.NewWineLogService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
