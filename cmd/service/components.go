package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	application "relay/internal/app"
	"relay/internal/handlers/kafka-consumer/position_changed"
	"relay/internal/handlers/rest/healthcheck_head"
	"relay/internal/pkg/config"
	"relay/internal/pkg/kafka"
	"relay/internal/pkg/postgres"
	"relay/internal/repository/memory"
	postgresRepo "relay/internal/repository/postgres"
	"relay/pkg/logger"
	"relay/pkg/querier"
	"relay/pkg/tx"
)

type storageHandle struct {
	*application.Storage
	pingers []healthcheck_head.Pinger
	close   func()
}

// newStorage собирает хранилище по STORAGE_DRIVER.
func newStorage(ctx context.Context, log logger.Logger, cfg *config.Config) (*storageHandle, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}

		if err := postgresRepo.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}

		return &storageHandle{
			Storage: &application.Storage{
				Repository: postgresRepo.New(querier.New(pool, pgxv5.DefaultCtxGetter)),
				TxManager:  tx.New(pool),
			},
			pingers: []healthcheck_head.Pinger{pool},
			close:   pool.Close,
		}, nil
	default:
		log.Warn("using in-memory storage, state is lost on restart")

		store := memory.New()
		return &storageHandle{
			Storage: &application.Storage{
				Repository: store,
				TxManager:  memory.NewTxManager(store),
			},
			close: func() {},
		}, nil
	}
}

func parseBrokers(raw string) []string {
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

// newProducer возвращает nil, если Kafka выключена.
func newProducer(ctx context.Context, log logger.Logger, cfg *config.Config) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	return kafka.NewProducer(ctx, log, &cfg.Kafka, parseBrokers(cfg.Kafka.Brokers))
}

// startKafka запускает экспорт событий и консьюмер позиций курьеров.
// Возвращает nil-канал, если Kafka выключена.
func startKafka(ctx context.Context, log logger.Logger, cfg *config.Config, app *application.Application) (<-chan error, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	runLog := log.With(logger.NewField("component", "kafka"))
	kafkaErr := make(chan error, 2)

	if app.EventExporter != nil {
		go func() {
			if err := app.EventExporter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				kafkaErr <- fmt.Errorf("event exporter: %w", err)
			}
		}()
	}

	brokers := parseBrokers(cfg.Kafka.Brokers)
	handler := position_changed.New(log, app.ServiceFleet, cfg.Kafka.Handlers.PositionChanged.ProcessTimeout)

	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.PositionsTopic},
		handler,
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}

	go func() {
		defer func() {
			if err := consumer.Close(); err != nil {
				runLog.Error("Failed to close Kafka consumer", logger.NewField("error", err))
			}
		}()

		runLog.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Kafka.PositionsTopic),
			logger.NewField("group", cfg.Kafka.ConsumerGroup),
		).Info("Kafka consumer starting")

		if err := consumer.Start(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				runLog.Info("Kafka consumer stopped gracefully")
				return
			}
			kafkaErr <- err
		}
	}()

	return kafkaErr, nil
}
