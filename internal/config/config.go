package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all job settings, populated from environment variables.
type Config struct {
	DataAPIKey      string
	RegistryBaseURL string
	HTTPTimeout     time.Duration
	PageSize        int
	MaxRetries      int

	SlackWebhookURL string

	WatchlistPath string
	HistoryPath   string
	SnapshotPath  string
	ReportDir     string

	RadiusKM   float64
	AlertLimit int

	LogLevel  string
	LogFormat string

	// Optional Kafka alert-event sink.
	KafkaEnabled    bool
	KafkaBrokers    []string
	KafkaAlertTopic string

	// Optional Prometheus Pushgateway for batch metrics.
	PushgatewayURL string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	httpTimeout, err := parseDuration("HTTP_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	pageSize, err := parsePositiveInt("PAGE_SIZE", 9999)
	if err != nil {
		return nil, err
	}

	maxRetries, err := parsePositiveInt("MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	alertLimit, err := parsePositiveInt("ALERT_LIMIT", 15)
	if err != nil {
		return nil, err
	}

	radius, err := parseRadius()
	if err != nil {
		return nil, err
	}

	kafkaBrokers := splitList(envOrDefault("KAFKA_BROKERS", ""))
	kafkaEnabled := false
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		DataAPIKey:      os.Getenv("DATA_API_KEY"),
		RegistryBaseURL: envOrDefault("REGISTRY_BASE_URL", "http://apis.data.go.kr/B552584/EvCharger/getChargerInfo"),
		HTTPTimeout:     httpTimeout,
		PageSize:        pageSize,
		MaxRetries:      maxRetries,

		SlackWebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),

		WatchlistPath: envOrDefault("WATCHLIST_PATH", "skel_chargers.csv"),
		HistoryPath:   envOrDefault("HISTORY_PATH", "competitor_alerts.csv"),
		SnapshotPath:  envOrDefault("SNAPSHOT_PATH", "latest_data.csv.gz"),
		ReportDir:     envOrDefault("REPORT_DIR", "."),

		RadiusKM:   radius,
		AlertLimit: alertLimit,

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),

		KafkaEnabled:    kafkaEnabled,
		KafkaBrokers:    kafkaBrokers,
		KafkaAlertTopic: envOrDefault("KAFKA_ALERT_TOPIC", "charger-alerts"),

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
	}

	if cfg.DataAPIKey == "" {
		return nil, errors.New("DATA_API_KEY is required")
	}
	if cfg.RegistryBaseURL == "" {
		return nil, errors.New("REGISTRY_BASE_URL is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseRadius() (float64, error) {
	s := os.Getenv("RADIUS_KM")
	if s == "" {
		return 1.0, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r <= 0 {
		return 0, errors.New("invalid RADIUS_KM")
	}
	return r, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
