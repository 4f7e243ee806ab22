package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/evwatch/charger-alerts/internal/domain"
)

// HistoryStore appends alert entries to a cumulative CSV log. Entries are
// never rewritten or deleted; the header is written only when the file is
// created.
type HistoryStore struct {
	path string
}

func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

var historyHeader = []string{
	"detected_at", "watch_id", "watch_name", "distance_km",
	"station_id", "station_name", "operator", "capacity_kw", "address",
}

// Append writes the entries to the end of the log. A no-op for an empty slice.
func (s *HistoryStore) Append(entries []domain.AlertHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	info, err := os.Stat(s.path)
	needHeader := err != nil || info.Size() == 0

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open alert history: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(historyHeader); err != nil {
			return fmt.Errorf("write history header: %w", err)
		}
	}
	for _, e := range entries {
		row := []string{
			e.DetectedAt,
			e.WatchID,
			e.WatchName,
			strconv.FormatFloat(e.DistanceKM, 'f', 3, 64),
			e.StationID,
			e.StationName,
			e.Operator,
			strconv.FormatFloat(e.CapacityKW, 'f', -1, 64),
			e.Address,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write history row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush alert history: %w", err)
	}
	return nil
}
