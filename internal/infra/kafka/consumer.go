package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/pkg/logger"
)

// EventHandler processes one catalog event.
type EventHandler func(event *CatalogEvent) error

// StartCatalogEventConsumer reads catalog events in a loop until ctx is
// cancelled. Blocking, run it in a goroutine.
func StartCatalogEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Catalog event consumer stopped")
	}()

	logger.Info("Catalog event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event CatalogEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal catalog event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received catalog event",
			zap.String("type", event.Type),
			zap.Int64("video_id", event.VideoID),
		)

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle catalog event",
				zap.String("type", event.Type),
				zap.Int64("video_id", event.VideoID),
				zap.Error(err),
			)
		}
	}
}
