package di

import (
	"fmt"

	"FxRisk/internal/domain/repository"
	domsvc "FxRisk/internal/domain/service"
	"FxRisk/internal/handler/api"
	internalrepo "FxRisk/internal/repository"
	"FxRisk/internal/service/ratelimit"
	"FxRisk/internal/services/scenario"
	"FxRisk/internal/services/sentiment"
	"FxRisk/internal/usecase"
	"FxRisk/pkg/cache"
	"FxRisk/pkg/config"
	xhttp "FxRisk/pkg/http"
	pkgkafka "FxRisk/pkg/kafka"
	applogger "FxRisk/pkg/logger"
	"FxRisk/pkg/metrics"
	"FxRisk/pkg/server"
)

// CLI bundles the use cases the one-shot commands need.
type CLI struct {
	Logger   *applogger.Logger
	Analysis *usecase.RiskAnalysisUseCase
	News     *usecase.NewsUseCase
	Nav      *usecase.NavigationUseCase
}

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, func(), error) {
	if !cfg.Kafka.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, func() { _ = producer.Close() }, nil
}

// ProvideLogger creates the application logger. Error lines are shipped to the
// logs topic when a producer is available.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, func(), error) {
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if producer == nil {
		return l, func() {}, nil
	}
	l.AddCollector(&applogger.CollectionConfig{
		Topic:     cfg.Kafka.LogsTopic,
		Publisher: producer,
	})
	return l, l.RemoveCollector, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache backend selected by cache.backend.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (cache.Service, func(), error) {
	mem := func() *cache.MemoryCache {
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize))
	}
	redisCache := func() (*cache.RedisCache, error) {
		return cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
	}

	var c cache.Service
	switch cfg.Cache.Backend {
	case "redis":
		rc, err := redisCache()
		if err != nil {
			return nil, nil, fmt.Errorf("cache: %w", err)
		}
		c = rc
	case "layered":
		rc, err := redisCache()
		if err != nil {
			return nil, nil, fmt.Errorf("cache: %w", err)
		}
		c = cache.NewLayeredCache(mem(), rc, cache.WithL1TTL(cfg.News.CacheTTL))
	default:
		c = mem()
	}
	l.Info("cache ready", applogger.String("backend", cfg.Cache.Backend))

	return c, func() {
		if err := c.Close(); err != nil {
			l.Warn("cache close", applogger.Error(err))
		}
	}, nil
}

// ProvideEventPublisher publishes analysis events to Kafka, or drops them when
// Kafka is disabled.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.EventPublisher {
	if producer == nil {
		return internalrepo.NoopEventPublisher{}
	}
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Kafka.EventsTopic)
}

// ProvideNewsSource serves the embedded fixture through the cache.
func ProvideNewsSource(cfg *config.Config, c cache.Service, m repository.Metrics, l *applogger.Logger) (repository.NewsSource, error) {
	fixture, err := internalrepo.NewFixtureNewsSource()
	if err != nil {
		return nil, err
	}
	return internalrepo.NewCachedNewsSource(fixture, c, cfg.News.CacheTTL, m, l), nil
}

// ProvideRateProvider returns the configured quote source.
func ProvideRateProvider(cfg *config.Config) repository.RateProvider {
	return internalrepo.NewStaticRateProvider(cfg)
}

// ProvideScenarioModel creates the scenario model with the default random source.
func ProvideScenarioModel() domsvc.ScenarioPredictor {
	return scenario.NewModel()
}

// ProvideSentimentAggregator creates the sentiment aggregator.
func ProvideSentimentAggregator() domsvc.SentimentSummarizer {
	return sentiment.NewAggregator()
}

// ProvideNewsUseCase creates the news use case bounded by news.as_of.
func ProvideNewsUseCase(src repository.NewsSource, s domsvc.SentimentSummarizer, m repository.Metrics, cfg *config.Config) *usecase.NewsUseCase {
	return usecase.NewNewsUseCase(src, s, m, cfg.AsOfDate())
}

// ProvideHTTPServer builds the Echo server with the dashboard routes.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h *api.DashboardEchoHandler) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path, cfg.Server.SlowThreshold))
	} else {
		opts = append(opts, xhttp.WithMetrics("", 0))
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, xhttp.WithRateLimit(ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRPS)))
	}
	return xhttp.NewServer([]xhttp.Handler{h}, opts...)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server) *server.App {
	return server.New(cfg, l, srv)
}

// ProvideCLI bundles the use cases for one-shot commands.
func ProvideCLI(
	l *applogger.Logger,
	analysis *usecase.RiskAnalysisUseCase,
	news *usecase.NewsUseCase,
	nav *usecase.NavigationUseCase,
) *CLI {
	return &CLI{Logger: l, Analysis: analysis, News: news, Nav: nav}
}
