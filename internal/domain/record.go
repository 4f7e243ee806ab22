package domain

import (
	"errors"
	"strings"
)

// StationRecord is one raw connector row as delivered by the registry
// collector. Several connectors can share a StationID; together they make up
// one physical charging station. All fields keep the upstream text form —
// numeric-looking values (output, coordinates) are only interpreted during
// normalization.
type StationRecord struct {
	StationID      string `json:"statId"`
	RegionCode     string `json:"zcode"`
	OperatorID     string `json:"busiId"`
	OperatorName   string `json:"busiNm"`
	ChargerType    string `json:"chgerType"`
	Output         string `json:"output"`
	Method         string `json:"method"`
	KindCode       string `json:"kind"`
	KindDetailCode string `json:"kindDetail"`
	Name           string `json:"statNm"`
	Address        string `json:"addr"`
	Lat            string `json:"lat"`
	Lng            string `json:"lng"`
}

// ErrMissingStationID marks a record that cannot participate in diffing or
// grouping. Callers skip and count such records rather than treating an empty
// key as a real station.
var ErrMissingStationID = errors.New("station record has no statId")

// Validate reports the one structural violation the pipeline refuses to
// normalize around: a missing station identifier.
func (r StationRecord) Validate() error {
	if strings.TrimSpace(r.StationID) == "" {
		return ErrMissingStationID
	}
	return nil
}

// SpeedClass is the business classification of a connector.
type SpeedClass string

const (
	SpeedSlow SpeedClass = "완속"
	SpeedFast SpeedClass = "급속"
)

// RegionBucket partitions the administrative region codes into the three
// reporting areas used by the business side.
type RegionBucket string

const (
	BucketCapitalArea RegionBucket = "수도권"
	BucketMetroCities RegionBucket = "5대광역시"
	BucketProvincial  RegionBucket = "지방"
)

// Geo is a parsed WGS-84 coordinate pair. Valid is false when either value
// was missing or unparsable; such a point never matches anything.
type Geo struct {
	Lat   float64
	Lon   float64
	Valid bool
}

// NormalizedRecord is a StationRecord plus the derived fields the rest of the
// pipeline works on. Every derived field is a pure function of the raw record.
type NormalizedRecord struct {
	StationRecord

	RegionBucket RegionBucket
	RegionName   string
	Operator     string
	SpeedClass   SpeedClass
	KindName     string
	KindDetail   string

	// EffectiveCapacityKW is the rated output adjusted for shared-circuit
	// billing. CapacityParsed is false when the raw output text did not parse
	// and the 0.0 default was substituted.
	EffectiveCapacityKW float64
	CapacityParsed      bool

	Geo Geo
}

// AggregatedStation is one logical station built from the connector records
// sharing a station identifier within some filtered subset.
type AggregatedStation struct {
	StationID       string
	Name            string
	Operator        string
	Address         string
	Geo             Geo
	TotalCapacityKW float64
	Connectors      int
}

// WatchPoint is an externally supplied reference location. A point without
// valid coordinates is legal; the matcher skips it.
type WatchPoint struct {
	ID   string
	Name string
	Geo  Geo
}

// MatchRecord pairs a watch point with an aggregated station found inside the
// alert radius.
type MatchRecord struct {
	Watch      WatchPoint
	Station    AggregatedStation
	DistanceKM float64
}

// AlertHistoryEntry is the append-only persisted form of a match.
type AlertHistoryEntry struct {
	DetectedAt  string
	WatchID     string
	WatchName   string
	DistanceKM  float64
	StationID   string
	StationName string
	Operator    string
	CapacityKW  float64
	Address     string
}

// CanonicalID normalizes a station identifier for set comparison. Upstream
// identifier formats have drifted between string and number encodings
// release to release; the collector already preserves raw token text, so
// trimming surrounding whitespace is the whole canonical form. Anything
// stronger (case folding, suffix stripping) would make old snapshots diff
// dirty against new ones.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}
