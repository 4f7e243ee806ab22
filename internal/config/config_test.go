package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-service-key"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, cfg.DataAPIKey)
	assert.Equal(t, "http://apis.data.go.kr/B552584/EvCharger/getChargerInfo", cfg.RegistryBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 9999, cfg.PageSize)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "skel_chargers.csv", cfg.WatchlistPath)
	assert.Equal(t, "competitor_alerts.csv", cfg.HistoryPath)
	assert.Equal(t, "latest_data.csv.gz", cfg.SnapshotPath)
	assert.Equal(t, ".", cfg.ReportDir)
	assert.Equal(t, 1.0, cfg.RadiusKM)
	assert.Equal(t, 15, cfg.AlertLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.SlackWebhookURL)
	assert.Empty(t, cfg.PushgatewayURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)
	t.Setenv("REGISTRY_BASE_URL", "http://localhost:8080/chargers")
	t.Setenv("HTTP_TIMEOUT", "10s")
	t.Setenv("PAGE_SIZE", "500")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/x")
	t.Setenv("WATCHLIST_PATH", "/data/watch.csv")
	t.Setenv("HISTORY_PATH", "/data/history.csv")
	t.Setenv("SNAPSHOT_PATH", "/data/prev.csv.gz")
	t.Setenv("REPORT_DIR", "/reports")
	t.Setenv("RADIUS_KM", "2.5")
	t.Setenv("ALERT_LIMIT", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_ALERT_TOPIC", "ev-alerts")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgw:9091")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/chargers", cfg.RegistryBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 500, cfg.PageSize)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, "https://hooks.slack.com/services/x", cfg.SlackWebhookURL)
	assert.Equal(t, "/data/watch.csv", cfg.WatchlistPath)
	assert.Equal(t, "/data/history.csv", cfg.HistoryPath)
	assert.Equal(t, "/data/prev.csv.gz", cfg.SnapshotPath)
	assert.Equal(t, "/reports", cfg.ReportDir)
	assert.Equal(t, 2.5, cfg.RadiusKM)
	assert.Equal(t, 30, cfg.AlertLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ev-alerts", cfg.KafkaAlertTopic)
	assert.Equal(t, "http://pushgw:9091", cfg.PushgatewayURL)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA_API_KEY")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)
	t.Setenv("PAGE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAGE_SIZE")
}

func TestLoad_InvalidRadius(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)
	t.Setenv("RADIUS_KM", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RADIUS_KM")
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("DATA_API_KEY", testAPIKey)
	t.Setenv("KAFKA_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
