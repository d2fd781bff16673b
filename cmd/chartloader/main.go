package main

import (
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/rabbitmq"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

// Offline tool that publishes a top-chart batch file onto the ingest queue.
// The API-side consumer upserts the entries by provider id.
func main() {
	file := flag.String("file", "", "path to a JSON file holding chart entries (required)")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if *file == "" {
		logger.Fatal("file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("err read file", zap.Error(err))
	}

	var entries []model.ChartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Fatal("err parse file", zap.Error(err))
	}
	if len(entries) == 0 {
		logger.Fatal("file holds no entries")
	}

	publisher, err := rabbitmq.NewPublisher(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	if err := publisher.PublishChartBatch(rabbitmq.ChartIngestMessage{Entries: entries}); err != nil {
		logger.Fatal("err publish batch", zap.Error(err))
	}

	logger.Info("chart batch published", zap.Int("entries", len(entries)))
}
