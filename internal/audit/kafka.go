package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/config"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"

	"github.com/segmentio/kafka-go"
)

// KafkaLog appends payment webhook events to a durable topic. Every raw
// callback and processing error lands here, keyed by transaction id so one
// payment's events stay ordered within a partition.
type KafkaLog struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaLog(logger *slog.Logger, cfg config.Kafka) *KafkaLog {
	return &KafkaLog{
		logger: logger.With(slog.String("audit", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (l *KafkaLog) Record(ctx context.Context, e entities.AuditEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	msg := kafka.Message{Value: value}
	if e.TransactionID != "" {
		msg.Key = []byte(e.TransactionID)
	}

	if err := l.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	return nil
}

func (l *KafkaLog) Close() error {
	return l.writer.Close()
}
