package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordsWithIDs(ids ...string) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, NormalizedRecord{StationRecord: StationRecord{StationID: id}})
	}
	return out
}

func TestNewStationIDs(t *testing.T) {
	t.Run("no previous snapshot returns everything", func(t *testing.T) {
		fresh := NewStationIDs(recordsWithIDs("A", "B", "C"), nil)
		assert.Len(t, fresh, 3)
		assert.Contains(t, fresh, "A")
		assert.Contains(t, fresh, "B")
		assert.Contains(t, fresh, "C")
	})

	t.Run("no previous snapshot with empty current", func(t *testing.T) {
		assert.Empty(t, NewStationIDs(nil, nil))
	})

	t.Run("identical runs yield empty set", func(t *testing.T) {
		current := recordsWithIDs("A", "B")
		assert.Empty(t, NewStationIDs(current, current))
	})

	t.Run("set difference", func(t *testing.T) {
		current := recordsWithIDs("A", "B", "C")
		previous := recordsWithIDs("A", "C")
		fresh := NewStationIDs(current, previous)
		assert.Len(t, fresh, 1)
		assert.Contains(t, fresh, "B")
	})

	t.Run("removed stations are not reported", func(t *testing.T) {
		current := recordsWithIDs("A")
		previous := recordsWithIDs("A", "B")
		assert.Empty(t, NewStationIDs(current, previous))
	})

	t.Run("whitespace drift does not look new", func(t *testing.T) {
		current := recordsWithIDs(" 1001 ")
		previous := recordsWithIDs("1001")
		assert.Empty(t, NewStationIDs(current, previous))
	})

	t.Run("duplicate connectors count once", func(t *testing.T) {
		current := recordsWithIDs("A", "A", "B")
		fresh := NewStationIDs(current, recordsWithIDs("B"))
		assert.Len(t, fresh, 1)
		assert.Contains(t, fresh, "A")
	})

	t.Run("empty non-nil previous treats nothing as seen", func(t *testing.T) {
		fresh := NewStationIDs(recordsWithIDs("A"), []NormalizedRecord{})
		assert.Len(t, fresh, 1)
	})
}
