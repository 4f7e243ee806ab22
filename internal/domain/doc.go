// Package domain models Korean public EV-charger registry data and the
// change-detection pipeline built on it.
//
// # Data Source
//
// Records originate from the Ministry of Environment charger registry on
// data.go.kr (B552584/EvCharger getChargerInfo). The collector pages through
// every administrative region code and flattens the response into one row per
// connector; a physical station is the set of rows sharing a statId.
//
// # Registry Conventions
//
// Region codes (zcode):
//
//	Two-digit province/metropolitan codes, e.g. "11" = 서울특별시. Bucketed
//	three ways for reporting: 수도권 (11, 28, 41), 5대광역시 (26, 27, 29, 30,
//	31), and 지방 for everything else.
//
// Operator codes (busiId):
//
//	Two-character operator codes resolved against a static table. Unknown
//	codes fall back to the registry's free-text busiNm, never to the bare
//	code. A few names intentionally override the published ones (LU, ME, SG).
//
// Charger type and speed class:
//
//	Type codes 02/07/08 are always 완속 (slow). Types 01/03–06/09/10 are fast
//	hardware, except that units whose output text is exactly "30" are billed
//	완속 — a literal string comparison, so "30.0" and "030" remain 급속. This
//	mirrors the billing rule, not the electrical spec.
//
// Output and sharing method:
//
//	output is free text in kW, occasionally with thousands separators;
//	unparsable values default to 0.0. When the method text contains 동시
//	(concurrent), connectors share one circuit and the effective capacity is
//	half nameplate.
//
// Identifiers:
//
//	statId has shipped as both JSON strings and JSON numbers across registry
//	releases. The collector preserves the raw token text and [CanonicalID]
//	trims whitespace, so snapshots from different releases diff cleanly.
//
// Coordinates:
//
//	lat/lng are text; unparsable values become an invalid [Geo], which can
//	never match anything. Distances use the haversine formula on a spherical
//	earth of radius 6371 km.
package domain
