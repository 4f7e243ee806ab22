// Command alertbatch runs one pass of the charger alert job: it harvests the
// public EV charger registry, diffs the dataset against the previous run's
// snapshot, and alerts on new fast-charger stations near watched locations.
//
// It is designed to run from cron or a scheduler once per day.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/evwatch/charger-alerts/internal/adapter/evregistry"
	kafkaadapter "github.com/evwatch/charger-alerts/internal/adapter/kafka"
	"github.com/evwatch/charger-alerts/internal/adapter/slack"
	"github.com/evwatch/charger-alerts/internal/adapter/store"
	"github.com/evwatch/charger-alerts/internal/config"
	"github.com/evwatch/charger-alerts/internal/observability"
	"github.com/evwatch/charger-alerts/internal/pipeline"
)

func main() {
	// Local runs keep credentials in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	collector := evregistry.NewClient(cfg, logger, metrics, nil)
	snapshot := store.NewSnapshotStore(cfg.SnapshotPath)
	watchlist := store.NewWatchlistStore(cfg.WatchlistPath)
	history := store.NewHistoryStore(cfg.HistoryPath)
	report := store.NewReportWriter(cfg.ReportDir)
	notifier := slack.NewWebhook(cfg.SlackWebhookURL, cfg.HTTPTimeout, logger)

	var publisher pipeline.AlertPublisher
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
		logger.Info("kafka alert sink enabled", "topic", cfg.KafkaAlertTopic)
	}

	p := pipeline.New(
		collector, snapshot, watchlist, history, report, notifier, publisher,
		logger, metrics, cfg.RadiusKM, cfg.AlertLimit,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	result, err := p.Run(ctx)

	if pushErr := metrics.Push(cfg.PushgatewayURL); pushErr != nil {
		logger.Error("metrics push failed", "error", pushErr)
	}

	if err != nil {
		logger.Error("run failed", "error", err, "duration", time.Since(start))
		os.Exit(1)
	}

	logger.Info("run finished",
		"state", string(result.State),
		"collected", result.Collected,
		"skipped", result.Skipped,
		"new_stations", result.NewStations,
		"matches", len(result.Matches),
		"duration", time.Since(start),
	)

	// An empty harvest means the registry or the key is broken; surface it to
	// the scheduler so the run shows up as failed.
	if result.State == pipeline.StateNoData {
		os.Exit(1)
	}
}
