package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchAt(id, name string, lat, lon float64) WatchPoint {
	return WatchPoint{ID: id, Name: name, Geo: Geo{Lat: lat, Lon: lon, Valid: true}}
}

func stationAt(id string, lat, lon float64) AggregatedStation {
	return AggregatedStation{StationID: id, Name: id, Geo: Geo{Lat: lat, Lon: lon, Valid: true}}
}

func TestMatchNearby(t *testing.T) {
	t.Run("candidate inside radius matches", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "강남점", 37.50, 127.00)}
		candidates := []AggregatedStation{stationAt("C1", 37.505, 127.00)}

		matches := MatchNearby(watch, candidates, 1.0)
		require.Len(t, matches, 1)
		assert.Equal(t, "W1", matches[0].Watch.ID)
		assert.Equal(t, "C1", matches[0].Station.StationID)
		assert.InDelta(t, 0.556, matches[0].DistanceKM, 0.001)
	})

	t.Run("boundary distance is inclusive", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		candidate := stationAt("C1", 37.508, 127.00)
		threshold := HaversineKM(37.50, 127.00, 37.508, 127.00)

		matches := MatchNearby(watch, []AggregatedStation{candidate}, threshold)
		assert.Len(t, matches, 1)
	})

	t.Run("just beyond the boundary is excluded", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		candidate := stationAt("C1", 37.508, 127.00)
		threshold := HaversineKM(37.50, 127.00, 37.508, 127.00)

		matches := MatchNearby(watch, []AggregatedStation{candidate}, threshold-1e-9)
		assert.Empty(t, matches)
	})

	t.Run("candidate 1.5km away misses default radius", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		candidates := []AggregatedStation{stationAt("C1", 37.5135, 127.00)}

		assert.Empty(t, MatchNearby(watch, candidates, 1.0))
	})

	t.Run("watch point without coordinates is skipped", func(t *testing.T) {
		watch := []WatchPoint{{ID: "W1", Name: "좌표없음"}}
		candidates := []AggregatedStation{stationAt("C1", 37.50, 127.00)}

		assert.Empty(t, MatchNearby(watch, candidates, 1.0))
	})

	t.Run("candidate without coordinates never matches", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		candidates := []AggregatedStation{{StationID: "C1"}}

		assert.Empty(t, MatchNearby(watch, candidates, 1.0))
	})

	t.Run("empty inputs yield empty output", func(t *testing.T) {
		assert.Empty(t, MatchNearby(nil, nil, 1.0))
	})

	t.Run("matches per watch point sort by ascending distance", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		candidates := []AggregatedStation{
			stationAt("far", 37.507, 127.00),
			stationAt("near", 37.502, 127.00),
			stationAt("mid", 37.505, 127.00),
		}

		matches := MatchNearby(watch, candidates, 1.0)
		require.Len(t, matches, 3)
		assert.Equal(t, "near", matches[0].Station.StationID)
		assert.Equal(t, "mid", matches[1].Station.StationID)
		assert.Equal(t, "far", matches[2].Station.StationID)
	})

	t.Run("watch points keep input order", func(t *testing.T) {
		watch := []WatchPoint{
			watchAt("W1", "first", 37.50, 127.00),
			watchAt("W2", "second", 35.18, 129.08),
		}
		candidates := []AggregatedStation{
			stationAt("busan", 35.181, 129.08),
			stationAt("seoul", 37.501, 127.00),
		}

		matches := MatchNearby(watch, candidates, 1.0)
		require.Len(t, matches, 2)
		assert.Equal(t, "W1", matches[0].Watch.ID)
		assert.Equal(t, "seoul", matches[0].Station.StationID)
		assert.Equal(t, "W2", matches[1].Watch.ID)
	})

	t.Run("no cap on matches per watch point", func(t *testing.T) {
		watch := []WatchPoint{watchAt("W1", "w", 37.50, 127.00)}
		var candidates []AggregatedStation
		for i := 0; i < 30; i++ {
			candidates = append(candidates, stationAt(string(rune('a'+i)), 37.5001, 127.00))
		}

		assert.Len(t, MatchNearby(watch, candidates, 1.0), 30)
	})
}
