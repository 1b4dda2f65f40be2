//go:build wireinject
// +build wireinject

package di

import (
	"MarketMood/pkg/config"
	"MarketMood/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,
		ProvideRateLimiter,
		ProvideBytesCache,

		// Repositories
		ProvideMoodStore,
		ProvideMoodPublisher,
		ProvideRSIFetcher,
		ProvideArticleSearcher,
		ProvideHeadlineSource,

		// Scoring
		ProvideScorer,

		// Use cases
		ProvideSeriesProvider,
		ProvideSentimentProvider,
		ProvideMoodAggregator,
		ProvideHeadlineAnalyzer,
		ProvideKafkaMoodsHandler,

		// HTTP surface
		ProvideLiveHub,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
