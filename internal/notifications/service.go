package notifications

import (
	"context"
	"fmt"

	"taskhub/internal/shared/config"
	"taskhub/pkg/logger"
)

// Service owns the producer/consumer pair for task notifications
type Service struct {
	producer Producer
	consumer Consumer
}

// NewService builds the notification service from the Kafka configuration
func NewService(cfg config.KafkaConfig, log *logger.Logger) (*Service, error) {
	producer, err := NewKafkaProducer(DefaultProducerConfig(cfg.Brokers, cfg.TaskTopic))
	if err != nil {
		return nil, fmt.Errorf("notification producer: %w", err)
	}

	consumer, err := NewKafkaConsumer(DefaultConsumerConfig(cfg.Brokers, cfg.ConsumerGroup, cfg.TaskTopic), log)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("notification consumer: %w", err)
	}

	return &Service{
		producer: producer,
		consumer: consumer,
	}, nil
}

// Producer exposes the publishing side for the task service
func (s *Service) Producer() Producer {
	return s.producer
}

// Start begins consuming task events until the context is cancelled
func (s *Service) Start(ctx context.Context) error {
	return s.consumer.Start(ctx)
}

// Stop shuts down both sides
func (s *Service) Stop() error {
	var firstErr error
	if err := s.consumer.Stop(); err != nil {
		firstErr = err
	}
	if err := s.producer.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
