package domain

// AggregateStations collapses connector records into one AggregatedStation per
// station identifier. Only records whose canonical ID is in ids (nil ids
// means no restriction) and whose speed class matches are considered; the
// capacity sum covers exactly those members, never the other-class connectors
// of the same station.
//
// Grouping is order-stable: the first contributing record determines the
// representative name, address, operator, and coordinates, and stations are
// returned in first-seen input order. Empty input yields an empty slice.
func AggregateStations(records []NormalizedRecord, ids map[string]struct{}, speed SpeedClass) []AggregatedStation {
	var order []string
	groups := make(map[string]*AggregatedStation)

	for _, r := range records {
		id := CanonicalID(r.StationID)
		if ids != nil {
			if _, wanted := ids[id]; !wanted {
				continue
			}
		}
		if r.SpeedClass != speed {
			continue
		}

		station, seen := groups[id]
		if !seen {
			station = &AggregatedStation{
				StationID: id,
				Name:      r.Name,
				Operator:  r.Operator,
				Address:   r.Address,
				Geo:       r.Geo,
			}
			groups[id] = station
			order = append(order, id)
		}
		station.TotalCapacityKW += r.EffectiveCapacityKW
		station.Connectors++
	}

	out := make([]AggregatedStation, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out
}
