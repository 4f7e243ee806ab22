package domain

import "sort"

// MatchNearby finds every candidate station within radiusKm of each watch
// point (boundary inclusive) and returns one MatchRecord per pair.
//
// Watch points without valid coordinates are skipped. Candidates without
// valid coordinates can never match. Output order is deterministic: watch
// points in input order, then ascending distance, ties broken by candidate
// input order.
func MatchNearby(watch []WatchPoint, candidates []AggregatedStation, radiusKm float64) []MatchRecord {
	type located struct {
		station AggregatedStation
		latRad  float64
		lonRad  float64
	}

	pool := make([]located, 0, len(candidates))
	for _, c := range candidates {
		if !c.Geo.Valid {
			continue
		}
		pool = append(pool, located{
			station: c,
			latRad:  radians(c.Geo.Lat),
			lonRad:  radians(c.Geo.Lon),
		})
	}

	var matches []MatchRecord
	for _, w := range watch {
		if !w.Geo.Valid {
			continue
		}
		wLat := radians(w.Geo.Lat)
		wLon := radians(w.Geo.Lon)

		start := len(matches)
		for _, c := range pool {
			dist := haversineFromRadians(wLat, wLon, c.latRad, c.lonRad)
			if dist <= radiusKm {
				matches = append(matches, MatchRecord{
					Watch:      w,
					Station:    c.station,
					DistanceKM: dist,
				})
			}
		}

		// Stable sort keeps candidate input order for equal distances.
		sort.SliceStable(matches[start:], func(i, j int) bool {
			return matches[start+i].DistanceKM < matches[start+j].DistanceKM
		})
	}
	return matches
}
