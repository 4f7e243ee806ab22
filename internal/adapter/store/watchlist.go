package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/evwatch/charger-alerts/internal/domain"
)

// WatchlistStore loads the watch-list CSV. The file is a hand-maintained
// subset of registry data, so it uses the upstream column names (statId,
// statNm, lat, lng). Rows without usable coordinates load as valid watch
// points with a missing Geo; the matcher skips them.
type WatchlistStore struct {
	path string
}

func NewWatchlistStore(path string) *WatchlistStore {
	return &WatchlistStore{path: path}
}

// WatchPoints reads and parses the watch list. An absent file is an empty
// watch list, not an error: the run still harvests, reports, and persists its
// snapshot, it just has nothing to match against. A missing statId column is
// tolerated; such rows get a row-number identifier so history entries still
// reference something stable within the file.
func (s *WatchlistStore) WatchPoints() ([]domain.WatchPoint, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open watch list: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read watch list: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := indexColumns(rows[0])
	points := make([]domain.WatchPoint, 0, len(rows)-1)
	for i, row := range rows[1:] {
		id := cell(row, col.lookup("statId"))
		if id == "" {
			id = "row-" + strconv.Itoa(i+1)
		}
		points = append(points, domain.WatchPoint{
			ID:   id,
			Name: cell(row, col.lookup("statNm")),
			Geo:  domain.ParseGeo(cell(row, col.lookup("lat")), cell(row, col.lookup("lng"))),
		})
	}
	return points, nil
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func (c columnIndex) lookup(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
