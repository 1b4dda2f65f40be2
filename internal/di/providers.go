package di

import (
	"context"
	"fmt"
	"time"

	"MarketMood/internal/domain/repository"
	dservice "MarketMood/internal/domain/service"
	"MarketMood/internal/handler/api"
	internalrepo "MarketMood/internal/repository"
	"MarketMood/internal/service/alphavantage"
	icache "MarketMood/internal/service/cache"
	"MarketMood/internal/service/newsapi"
	"MarketMood/internal/service/ratelimit"
	"MarketMood/internal/service/scraper"
	"MarketMood/internal/service/sentiment"
	"MarketMood/internal/usecase"
	pkgch "MarketMood/pkg/clickhouse"
	"MarketMood/pkg/config"
	xhttp "MarketMood/pkg/http"
	pkgkafka "MarketMood/pkg/kafka"
	applogger "MarketMood/pkg/logger"
	"MarketMood/pkg/metrics"
	"MarketMood/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the schema.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.ClickHouse.Database)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideMoodStore creates the durable mood store.
func ProvideMoodStore(chClient *pkgch.Client, l *applogger.Logger) repository.MoodStore {
	store := internalrepo.NewCHMoodStore(chClient)
	store.SetLogger(l)
	return store
}

// ProvideKafkaProducer creates a Kafka producer, or nil when the backend
// writes to ClickHouse directly.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideMoodPublisher creates the Kafka publisher, or nil without a producer.
func ProvideMoodPublisher(producer *pkgkafka.Producer, cfg *config.Config, l *applogger.Logger) repository.Publisher {
	if producer == nil {
		return nil
	}
	pub := internalrepo.NewKafkaMoodPublisher(producer, cfg.Kafka.Topic)
	pub.SetLogger(l)
	return pub
}

// ProvideKafkaConsumer creates a Kafka consumer, or nil when the backend
// writes to ClickHouse directly.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaMoodsHandler registers the ingest handler for the moods topic.
func ProvideKafkaMoodsHandler(store repository.MoodStore, m repository.Metrics, cfg *config.Config) pkgkafka.MessageHandler {
	return usecase.NewKafkaMoodsHandler(cfg.Kafka.Topic, store, m)
}

// ProvideRateLimiter creates the shared upstream request limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideRSIFetcher creates the Alpha Vantage client.
func ProvideRSIFetcher(cfg *config.Config, rl *ratelimit.Limiter) repository.RSIFetcher {
	return alphavantage.NewClient(
		cfg.AlphaVantage.BaseURL,
		cfg.AlphaVantage.APIKey,
		cfg.AlphaVantage.Timeout,
		alphavantage.WithLimiter(rl, cfg.AlphaVantage.BudgetPerMin),
	)
}

// ProvideArticleSearcher creates the news-search client.
func ProvideArticleSearcher(cfg *config.Config, rl *ratelimit.Limiter) repository.ArticleSearcher {
	return newsapi.NewClient(
		cfg.NewsAPI.BaseURL,
		cfg.NewsAPI.APIKey,
		cfg.NewsAPI.Timeout,
		newsapi.WithLimiter(rl, cfg.NewsAPI.BudgetPerMin),
	)
}

// ProvideHeadlineSource creates the scraper subprocess client.
func ProvideHeadlineSource(cfg *config.Config) repository.HeadlineSource {
	return scraper.NewClient(cfg.Scraper.Command, cfg.Scraper.Script, cfg.Scraper.Timeout)
}

// ProvideScorer creates the lexicon scorer.
func ProvideScorer() *sentiment.Scorer {
	return sentiment.NewScorer(sentiment.NewAnalyzer(), sentiment.NewLexicon())
}

// ProvideBytesCache creates the fast cache tier: in-process TTL, layered
// over Redis when configured.
func ProvideBytesCache(cfg *config.Config) icache.BytesCache {
	local := icache.NewTTLCache()
	if !cfg.Cache.Redis.Enabled {
		return local
	}
	shared := icache.NewRedisCache(icache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
	return icache.NewLayeredBytesCache(local, shared, time.Minute)
}

// ProvideSeriesProvider creates the RSI series use case.
func ProvideSeriesProvider(fetcher repository.RSIFetcher, c icache.BytesCache, cfg *config.Config, m repository.Metrics, l *applogger.Logger) dservice.SeriesProvider {
	return usecase.NewSeriesUseCase(fetcher, c, cfg.Aggregation.SeriesTTL, m, l)
}

// ProvideSentimentProvider creates the news sentiment use case.
func ProvideSentimentProvider(searcher repository.ArticleSearcher, scorer *sentiment.Scorer, c icache.BytesCache, cfg *config.Config, m repository.Metrics, l *applogger.Logger) dservice.SentimentProvider {
	return usecase.NewSentimentUseCase(searcher, scorer, c, cfg.Aggregation.SentimentTTL, m, l)
}

// ProvideLiveHub creates the WebSocket fan-out hub.
func ProvideLiveHub(l *applogger.Logger) *api.LiveHub {
	return api.NewLiveHub(l)
}

// ProvideMoodAggregator creates the aggregation orchestrator.
func ProvideMoodAggregator(
	series dservice.SeriesProvider,
	snt dservice.SentimentProvider,
	store repository.MoodStore,
	pub repository.Publisher,
	live *api.LiveHub,
	cfg *config.Config,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.MoodAggregator {
	agg := usecase.NewMoodAggregator(series, snt, store, pub, cfg.Backend.Type, cfg.Aggregation.BatchSize, m, l)
	agg.SetBroadcaster(live)
	return agg
}

// ProvideHeadlineAnalyzer creates the live headline use case.
func ProvideHeadlineAnalyzer(source repository.HeadlineSource, scorer *sentiment.Scorer, m repository.Metrics, l *applogger.Logger) *usecase.HeadlineAnalyzer {
	return usecase.NewHeadlineAnalyzer(source, scorer, m, l)
}

// ProvideHTTPHandler creates the API handler.
func ProvideHTTPHandler(l *applogger.Logger, agg *usecase.MoodAggregator, headlines *usecase.HeadlineAnalyzer, store repository.MoodStore, live *api.LiveHub) xhttp.Handler {
	return api.NewMoodsEchoHandler(l, agg, headlines, store, live)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	live *api.LiveHub,
	consumer *pkgkafka.Consumer,
	kh pkgkafka.MessageHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
) *server.App {
	return server.New(cfg, l, handler, live, consumer, kh, chClient, producer)
}
