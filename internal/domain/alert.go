package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultAlertLimit caps the number of line items in one Slack message.
const DefaultAlertLimit = 15

// FormatAlert renders matches as the Slack message body. Returns the empty
// string when there are no matches; callers must not deliver an empty alert.
// At most limit matches are listed; when more exist, a remainder count line is
// appended instead of silently truncating.
func FormatAlert(matches []MatchRecord, today time.Time, limit int) string {
	if len(matches) == 0 {
		return ""
	}
	if limit <= 0 {
		limit = DefaultAlertLimit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚨 *[경쟁사 진입] 감시지점 반경 내 신규 급속충전소 (%s)*\n", today.Format("2006-01-02"))

	shown := matches
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, m := range shown {
		fmt.Fprintf(&b, "📍 *%s* 인근 (%.3fkm)\n • %s (%s) / %gkW\n",
			m.Watch.Name, m.DistanceKM, m.Station.Name, m.Station.Operator, m.Station.TotalCapacityKW)
	}

	if rest := len(matches) - limit; rest > 0 {
		fmt.Fprintf(&b, "… 외 %d건\n", rest)
	}
	return b.String()
}

// BuildHistoryEntries converts matches into the append-only history form,
// stamping each with the detection date and rounding distance to 3 decimals.
func BuildHistoryEntries(matches []MatchRecord, today time.Time) []AlertHistoryEntry {
	entries := make([]AlertHistoryEntry, 0, len(matches))
	date := today.Format("2006-01-02")
	for _, m := range matches {
		entries = append(entries, AlertHistoryEntry{
			DetectedAt:  date,
			WatchID:     m.Watch.ID,
			WatchName:   m.Watch.Name,
			DistanceKM:  roundKM(m.DistanceKM),
			StationID:   m.Station.StationID,
			StationName: m.Station.Name,
			Operator:    m.Station.Operator,
			CapacityKW:  m.Station.TotalCapacityKW,
			Address:     m.Station.Address,
		})
	}
	return entries
}

// Today returns the current date from the package clock, so tests can pin it.
func Today() time.Time {
	return clock.Now()
}

func roundKM(d float64) float64 {
	return math.Round(d*1000) / 1000
}
