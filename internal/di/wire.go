//go:build wireinject
// +build wireinject

package di

import (
	"FxRisk/internal/handler/api"
	"FxRisk/internal/usecase"
	"FxRisk/pkg/config"
	"FxRisk/pkg/server"

	"github.com/google/wire"
)

var coreSet = wire.NewSet(
	// Infrastructure
	ProvideKafkaProducer,
	ProvideLogger,
	ProvideMetrics,
	ProvideCache,

	// Repositories
	ProvideEventPublisher,
	ProvideNewsSource,
	ProvideRateProvider,

	// Domain services
	ProvideScenarioModel,
	ProvideSentimentAggregator,

	// Use cases
	usecase.NewRiskAnalysisUseCase,
	ProvideNewsUseCase,
	usecase.NewNavigationUseCase,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		coreSet,
		api.NewDashboardEchoHandler,
		ProvideHTTPServer,
		ProvideApp,
	)
	return nil, nil, nil
}

// InitializeCLI wires the use cases for one-shot commands.
func InitializeCLI(cfg *config.Config) (*CLI, func(), error) {
	wire.Build(
		coreSet,
		ProvideCLI,
	)
	return nil, nil, nil
}
