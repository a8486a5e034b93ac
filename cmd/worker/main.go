package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/config"
	infraES "github.com/adiweb12/Devwatsee/internal/infra/elasticsearch"
	infraKafka "github.com/adiweb12/Devwatsee/internal/infra/kafka"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

// The worker keeps the catalog search index in step with the database: it
// consumes catalog events and upserts one document per video.
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	esClient, err := infraES.NewClient(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to connect elasticsearch", zap.Error(err))
	}

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := esClient.EnsureVideosIndex(indexCtx); err != nil {
		indexCancel()
		logger.Fatal("Failed to ensure videos index", zap.Error(err))
	}
	indexCancel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["catalog_events"]
	if topic == "" {
		topic = "catalog-events"
	}
	groupID := "watsee-index-sync"

	logger.Info("Index sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.CatalogEvent) error {
		syncCtx, syncCancel := context.WithTimeout(ctx, 5*time.Second)
		defer syncCancel()

		return esClient.IndexVideo(syncCtx, &infraES.VideoDocument{
			ID:       event.VideoID,
			Title:    event.Title,
			Category: event.Category,
			Section:  event.Section,
		})
	}

	infraKafka.StartCatalogEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}
