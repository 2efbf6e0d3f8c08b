package di

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"NeoWatch/internal/domain/repository"
	domservice "NeoWatch/internal/domain/service"
	"NeoWatch/internal/handler/api"
	mid "NeoWatch/internal/middleware"
	internalrepo "NeoWatch/internal/repository"
	"NeoWatch/internal/service/cache"
	"NeoWatch/internal/services/insight"
	"NeoWatch/internal/usecase"
	"NeoWatch/pkg/config"
	pkgkafka "NeoWatch/pkg/kafka"
	"NeoWatch/pkg/logger"
	"NeoWatch/pkg/metrics"
	"NeoWatch/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideInsightClient builds the generative-text client, or nil when
// the insight collaborator is disabled. Responses are cached in Redis
// when configured and in process memory otherwise.
func ProvideInsightClient(cfg *config.Config, log *logger.Logger) *insight.Client {
	if !cfg.Insight.Enabled {
		return nil
	}

	var store cache.BytesCache
	if cfg.Insight.Redis.Enabled {
		store = cache.NewRedisCache(redis.NewClient(&redis.Options{
			Addr:     cfg.Insight.Redis.Addr,
			Password: cfg.Insight.Redis.Password,
			DB:       cfg.Insight.Redis.DB,
		}))
	} else {
		store = cache.NewTTLCache()
	}

	return insight.NewClient(cfg.Insight.BaseURL, cfg.Insight.APIKey, cfg.Insight.Model,
		insight.WithTimeout(cfg.Insight.Timeout),
		insight.WithCache(store, cfg.Insight.CacheTTL),
		insight.WithRateLimit(int(cfg.Insight.MaxRPS)),
		insight.WithLogger(log),
	)
}

// ProvidePredictor returns the predicted-tier strategy, or nil so the
// resolver skips the tier entirely when insight is unavailable.
func ProvidePredictor(client *insight.Client) domservice.OrbitPredictor {
	if client == nil || !client.Configured() {
		return nil
	}
	return insight.NewPredictor(client)
}

// ProvideNarrator returns the generative narrative strategy, or nil so
// the synthesizer only uses its deterministic templates.
func ProvideNarrator(client *insight.Client) domservice.NarrativeGenerator {
	if client == nil || !client.Configured() {
		return nil
	}
	return insight.NewNarrator(client)
}

// ProvideKafkaProducer creates a Kafka producer for the audit stream,
// or nil when auditing is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Audit.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Audit.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Audit.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Audit.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Audit.Kafka.MaxAttempts),
		pkgkafka.WithBatchSize(cfg.Audit.Kafka.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Audit.Kafka.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Audit.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Audit.Kafka.WriteTimeout, cfg.Audit.Kafka.ReadTimeout),
		pkgkafka.WithAsync(cfg.Audit.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideAuditPublisher creates the audit sink.
func ProvideAuditPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.AuditPublisher {
	if producer == nil {
		return internalrepo.NoopAuditPublisher{}
	}
	return internalrepo.NewKafkaAuditPublisher(producer, cfg.Audit.Topic)
}

// ProvideAuditPipeline buffers audit events in front of the sink.
func ProvideAuditPipeline(publisher repository.AuditPublisher, m repository.Metrics, cfg *config.Config) *mid.AuditPipeline {
	return mid.NewAuditPipeline(publisher, m,
		mid.WithBufferSize(cfg.Audit.BufferSize),
		mid.WithMaxEventsPerSec(cfg.Audit.MaxEventsPerSec),
	)
}

// ProvideResolver creates the classification resolver use case.
func ProvideResolver(
	predictor domservice.OrbitPredictor,
	log *logger.Logger,
	m repository.Metrics,
	pipeline *mid.AuditPipeline,
) *usecase.ClassificationResolver {
	return usecase.NewClassificationResolver(predictor,
		usecase.WithResolverLogger(log),
		usecase.WithResolverMetrics(m),
		usecase.WithResolverAuditor(pipeline),
	)
}

// ProvideSynthesizer creates the risk synthesizer use case.
func ProvideSynthesizer(
	narrator domservice.NarrativeGenerator,
	log *logger.Logger,
	m repository.Metrics,
	pipeline *mid.AuditPipeline,
) *usecase.RiskSynthesizer {
	return usecase.NewRiskSynthesizer(narrator,
		usecase.WithSynthesizerLogger(log),
		usecase.WithSynthesizerMetrics(m),
		usecase.WithSynthesizerAuditor(pipeline),
	)
}

// ProvideEngineHandler creates the HTTP handler for the engine.
func ProvideEngineHandler(
	log *logger.Logger,
	resolver *usecase.ClassificationResolver,
	synthesizer *usecase.RiskSynthesizer,
) *api.EngineEchoHandler {
	return api.NewEngineEchoHandler(log, resolver, synthesizer)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler *api.EngineEchoHandler,
	pipeline *mid.AuditPipeline,
	publisher repository.AuditPublisher,
	producer *pkgkafka.Producer,
) *server.App {
	return server.New(cfg, log, handler, pipeline, publisher, producer)
}
