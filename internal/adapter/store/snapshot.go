package store

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/evwatch/charger-alerts/internal/domain"
)

// SnapshotStore persists the normalized dataset between runs as a gzip CSV.
// Only the raw registry columns are written; loading re-normalizes them
// through the domain so derived fields are always produced by the current
// code, never read back stale from disk.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

var snapshotHeader = []string{
	"stat_id", "zcode", "busi_id", "busi_nm", "chger_type", "output",
	"method", "kind", "kind_detail", "stat_nm", "addr", "lat", "lng",
}

// LoadPrevious reads the prior run's snapshot. The second return is false
// when no snapshot exists yet (first run) — a defined state, not an error.
func (s *SnapshotStore) LoadPrevious() ([]domain.NormalizedRecord, bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot gzip: %w", err)
	}
	defer gz.Close()

	rows, err := csv.NewReader(gz).ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, true, nil
	}

	records := make([]domain.NormalizedRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(snapshotHeader) {
			return nil, false, fmt.Errorf("snapshot row has %d columns, want %d", len(row), len(snapshotHeader))
		}
		records = append(records, domain.Normalize(domain.StationRecord{
			StationID:      row[0],
			RegionCode:     row[1],
			OperatorID:     row[2],
			OperatorName:   row[3],
			ChargerType:    row[4],
			Output:         row[5],
			Method:         row[6],
			KindCode:       row[7],
			KindDetailCode: row[8],
			Name:           row[9],
			Address:        row[10],
			Lat:            row[11],
			Lng:            row[12],
		}))
	}
	return records, true, nil
}

// Save writes the current dataset as the next run's baseline. Written to a
// temp file first and renamed, so a crash mid-write cannot corrupt the
// previous snapshot.
func (s *SnapshotStore) Save(records []domain.NormalizedRecord) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	gz := gzip.NewWriter(tmp)
	w := csv.NewWriter(gz)

	if err := w.Write(snapshotHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.StationID, r.RegionCode, r.OperatorID, r.OperatorName,
			r.ChargerType, r.Output, r.Method, r.KindCode, r.KindDetailCode,
			r.Name, r.Address, r.Lat, r.Lng,
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush snapshot csv: %w", err)
	}
	if err := gz.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("close snapshot gzip: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
