package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NeoWatch/internal/domain/repository"
	mid "NeoWatch/internal/middleware"
	enginemetrics "NeoWatch/internal/service/metrics"
	"NeoWatch/pkg/config"
	xhttp "NeoWatch/pkg/http"
	pkgkafka "NeoWatch/pkg/kafka"
	applogger "NeoWatch/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP surface, audit
// pipeline, and graceful shutdown.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	pipeline   *mid.AuditPipeline
	publisher  repository.AuditPublisher
	producer   *pkgkafka.Producer
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	pipeline *mid.AuditPipeline,
	publisher repository.AuditPublisher,
	producer *pkgkafka.Producer,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		handler:   handler,
		pipeline:  pipeline,
		publisher: publisher,
		producer:  producer,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enginemetrics.Register()

	// Repeated warnings (insight outages, audit sink failures) are
	// aggregated onto the audit topic instead of flooding it.
	if a.producer != nil {
		a.logger.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          a.cfg.Audit.Topic + ".logs",
			Publisher:      kafkaLogPublisher{producer: a.producer},
		})
	}

	a.pipeline.Start(ctx)
	a.logger.Info("audit pipeline started",
		applogger.Bool("kafka", a.producer != nil),
		applogger.String("topic", a.cfg.Audit.Topic),
	)

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.logger),
	)
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("engine listening",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment),
		applogger.Bool("insight", a.cfg.Insight.Enabled),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	// Stop accepting audit events, then close the sink.
	a.pipeline.Stop()
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("audit publisher close error", applogger.Error(err))
	}

	a.logger.RemoveCollector()
	a.logger.Info("shutdown complete")
	return nil
}

// kafkaLogPublisher adapts the Kafka producer to the log collector's
// publisher contract.
type kafkaLogPublisher struct {
	producer *pkgkafka.Producer
}

func (p kafkaLogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}
