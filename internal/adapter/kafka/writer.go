package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/evwatch/charger-alerts/internal/config"
	"github.com/evwatch/charger-alerts/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes alert history entries to a Kafka topic for downstream
// consumers. It is an optional sink, feature-flagged via KAFKA_ENABLED.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured alert topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAlertTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishAlerts serializes and publishes the run's alert entries in a single
// WriteMessages call. Keyed by station id so replays of the same detection
// land in the same partition.
func (w *Writer) PublishAlerts(ctx context.Context, entries []domain.AlertHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(entries))
	for i := range entries {
		msg, err := serializeToMessage(entries[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an AlertHistoryEntry into a Kafka message.
func serializeToMessage(entry domain.AlertHistoryEntry) (kafkago.Message, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert entry: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(entry.StationID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "watch_id", Value: []byte(entry.WatchID)},
			{Key: "detected_at", Value: []byte(entry.DetectedAt)},
		},
	}, nil
}
