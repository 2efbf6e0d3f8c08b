//go:build wireinject
// +build wireinject

package di

import (
	"NeoWatch/pkg/config"
	"NeoWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Insight collaborator
		ProvideInsightClient,
		ProvidePredictor,
		ProvideNarrator,

		// Audit stream
		ProvideKafkaProducer,
		ProvideAuditPublisher,
		ProvideAuditPipeline,

		// Use cases
		ProvideResolver,
		ProvideSynthesizer,

		// HTTP surface
		ProvideEngineHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
