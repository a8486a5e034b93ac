package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/config"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

// Catalog event types.
const (
	EventVideoCreated = "video.created"
	EventVideoUpdated = "video.updated"
)

// CatalogEvent is published on every successful catalog write. The payload
// carries the row's final state so consumers can act without a DB read.
type CatalogEvent struct {
	Type     string `json:"type"`
	VideoID  int64  `json:"video_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Section  string `json:"section"`
}

// Producer writes catalog events to one topic.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer builds the catalog event producer. The topic comes from
// kafka.topics.catalog_events.
func NewProducer(cfg *config.KafkaConfig) *Producer {
	topic := cfg.Topics["catalog_events"]
	if topic == "" {
		topic = "catalog-events"
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topic),
	)

	return &Producer{writer: writer, topic: topic}
}

// PublishCatalogEvent sends one event, keyed by video id so updates to the
// same video stay ordered.
func (p *Producer) PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send catalog event: %w", err)
	}

	logger.Info("Catalog event sent",
		zap.String("type", event.Type),
		zap.Int64("video_id", event.VideoID),
	)

	return nil
}

// Close shuts the producer down.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
