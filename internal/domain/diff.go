package domain

// NewStationIDs returns the canonical station identifiers present in current
// but absent from previous. A nil previous means no snapshot exists yet
// (first run): every identifier in current is new. Running with
// current == previous yields the empty set.
//
// Records that failed Validate never reach this point, so an empty canonical
// ID cannot appear as a key.
func NewStationIDs(current, previous []NormalizedRecord) map[string]struct{} {
	currentIDs := idSet(current)
	if previous == nil {
		return currentIDs
	}

	previousIDs := idSet(previous)
	fresh := make(map[string]struct{})
	for id := range currentIDs {
		if _, seen := previousIDs[id]; !seen {
			fresh[id] = struct{}{}
		}
	}
	return fresh
}

func idSet(records []NormalizedRecord) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		ids[CanonicalID(r.StationID)] = struct{}{}
	}
	return ids
}
