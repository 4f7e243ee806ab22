package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evwatch/charger-alerts/internal/domain"
	"github.com/evwatch/charger-alerts/internal/observability"
)

// Collector harvests the full charger dataset from the public registry.
type Collector interface {
	FetchStations(ctx context.Context) ([]domain.StationRecord, error)
}

// SnapshotStore persists the dataset between runs for change detection.
type SnapshotStore interface {
	LoadPrevious() ([]domain.NormalizedRecord, bool, error)
	Save(records []domain.NormalizedRecord) error
}

// WatchlistSource provides the points of interest to match new stations against.
type WatchlistSource interface {
	WatchPoints() ([]domain.WatchPoint, error)
}

// HistorySink records matches for later review.
type HistorySink interface {
	Append(entries []domain.AlertHistoryEntry) error
}

// ReportWriter exports the full dataset for the run date.
type ReportWriter interface {
	Write(records []domain.NormalizedRecord, date time.Time) (string, error)
}

// Notifier delivers the formatted alert message.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// AlertPublisher forwards alert entries to a downstream stream. Optional.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, entries []domain.AlertHistoryEntry) error
}

// RunState classifies how far a batch pass got.
type RunState string

const (
	// StateNoData means the registry returned nothing; the snapshot is left
	// untouched so the next run diffs against the last good dataset.
	StateNoData RunState = "no-data-collected"
	// StateFirstRun means no previous snapshot existed; every collected
	// station counts as new and flows through matching and alerting.
	StateFirstRun RunState = "no-previous-snapshot"
	// StateCompleted is a normal pass with a diff against the prior snapshot.
	StateCompleted RunState = "completed"
)

// Result summarizes one batch pass.
type Result struct {
	State       RunState
	Collected   int
	Skipped     int
	NewStations int
	Matches     []domain.MatchRecord
	ReportPath  string
}

// Pipeline wires the collector, stores, and sinks into the daily batch pass.
type Pipeline struct {
	collector Collector
	snapshot  SnapshotStore
	watchlist WatchlistSource
	history   HistorySink
	report    ReportWriter
	notifier  Notifier
	publisher AlertPublisher

	logger  *slog.Logger
	metrics *observability.Metrics

	radiusKm   float64
	alertLimit int
}

// New creates a Pipeline. publisher may be nil when no stream is configured.
func New(
	collector Collector,
	snapshot SnapshotStore,
	watchlist WatchlistSource,
	history HistorySink,
	report ReportWriter,
	notifier Notifier,
	publisher AlertPublisher,
	logger *slog.Logger,
	metrics *observability.Metrics,
	radiusKm float64,
	alertLimit int,
) *Pipeline {
	return &Pipeline{
		collector:  collector,
		snapshot:   snapshot,
		watchlist:  watchlist,
		history:    history,
		report:     report,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger,
		metrics:    metrics,
		radiusKm:   radiusKm,
		alertLimit: alertLimit,
	}
}

// Run executes one complete batch pass: collect, normalize, report, diff,
// match, alert, and finally persist the new snapshot.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	defer func() {
		p.metrics.RunDuration.Set(time.Since(start).Seconds())
	}()

	today := domain.Today()

	raw, err := p.collector.FetchStations(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("collect stations: %w", err)
	}
	if len(raw) == 0 {
		p.logger.Error("registry returned no records, keeping previous snapshot")
		return Result{State: StateNoData}, nil
	}

	current, skipped := p.normalize(raw)
	p.metrics.RecordsCollected.Set(float64(len(current)))
	p.metrics.RecordsSkipped.Set(float64(skipped))
	p.logger.Info("dataset collected", "records", len(current), "skipped", skipped)

	reportPath, err := p.report.Write(current, today)
	if err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}
	p.logger.Info("report written", "path", reportPath)

	previous, found, err := p.snapshot.LoadPrevious()
	if err != nil {
		return Result{}, fmt.Errorf("load previous snapshot: %w", err)
	}

	result := Result{
		State:      StateCompleted,
		Collected:  len(current),
		Skipped:    skipped,
		ReportPath: reportPath,
	}

	if !found {
		p.logger.Info("no previous snapshot, treating every station as new")
		result.State = StateFirstRun
		previous = nil
	}

	newIDs := domain.NewStationIDs(current, previous)
	result.NewStations = len(newIDs)
	p.metrics.NewStations.Set(float64(len(newIDs)))
	p.logger.Info("diff computed", "new_stations", len(newIDs))

	if len(newIDs) > 0 {
		matches, err := p.alert(ctx, current, newIDs, today)
		if err != nil {
			return Result{}, err
		}
		result.Matches = matches
	}

	if err := p.snapshot.Save(current); err != nil {
		return Result{}, fmt.Errorf("save snapshot: %w", err)
	}

	return result, nil
}

// normalize validates and normalizes the raw dataset, dropping records that
// carry no station identifier.
func (p *Pipeline) normalize(raw []domain.StationRecord) ([]domain.NormalizedRecord, int) {
	current := make([]domain.NormalizedRecord, 0, len(raw))
	skipped := 0
	for _, rec := range raw {
		if err := rec.Validate(); err != nil {
			skipped++
			continue
		}
		current = append(current, domain.Normalize(rec))
	}
	return current, skipped
}

// alert aggregates the new fast stations, matches them against the watch
// list, and fans the matches out to the notifier, history, and publisher.
func (p *Pipeline) alert(ctx context.Context, current []domain.NormalizedRecord, newIDs map[string]struct{}, today time.Time) ([]domain.MatchRecord, error) {
	stations := domain.AggregateStations(current, newIDs, domain.SpeedFast)
	p.logger.Info("new fast stations aggregated", "stations", len(stations))
	if len(stations) == 0 {
		return nil, nil
	}

	watch, err := p.watchlist.WatchPoints()
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}

	matches := domain.MatchNearby(watch, stations, p.radiusKm)
	p.metrics.MatchesFound.Set(float64(len(matches)))
	if len(matches) == 0 {
		return nil, nil
	}
	p.logger.Info("proximity matches found", "matches", len(matches))

	message := domain.FormatAlert(matches, today, p.alertLimit)
	if err := p.notifier.Notify(ctx, message); err != nil {
		return nil, fmt.Errorf("deliver alert: %w", err)
	}
	p.metrics.AlertsDelivered.Inc()

	entries := domain.BuildHistoryEntries(matches, today)
	if err := p.history.Append(entries); err != nil {
		return nil, fmt.Errorf("append alert history: %w", err)
	}

	if p.publisher != nil {
		if err := p.publisher.PublishAlerts(ctx, entries); err != nil {
			// Streaming is best-effort; the webhook and history already have
			// the matches.
			p.logger.Warn("publish alerts failed", "error", err)
		}
	}

	return matches, nil
}
