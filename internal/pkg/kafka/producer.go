package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"bookstore/internal/pkg/config"
	"bookstore/pkg/logger"
)

const producerRetryMax = 5

// NewSyncProducer создает producer с подтверждением от всех реплик.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	brokers := Brokers(cfg)

	saramaConfig := sarama.NewConfig()
	if cfg.SaramaVersion != "" {
		version, err := sarama.ParseKafkaVersion(cfg.SaramaVersion)
		if err != nil {
			return nil, fmt.Errorf("parse kafka version %q: %w", cfg.SaramaVersion, err)
		}
		saramaConfig.Version = version
	}
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = producerRetryMax
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err := pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}
	return producer, nil
}
