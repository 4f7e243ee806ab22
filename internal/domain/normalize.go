package domain

import (
	"strconv"
	"strings"
)

// Normalize derives the categorical and numeric fields from one raw connector
// record. It is total: malformed inputs degrade to documented defaults
// (0.0 capacity, invalid Geo, code passthrough) and never produce an error.
func Normalize(raw StationRecord) NormalizedRecord {
	capacity, parsed := EffectiveCapacity(raw.Output, raw.Method)

	return NormalizedRecord{
		StationRecord: raw,

		RegionBucket: classifyRegion(raw.RegionCode),
		RegionName:   lookupOrRaw(regionNames, raw.RegionCode, raw.RegionCode),
		Operator:     lookupOrRaw(operatorNames, raw.OperatorID, raw.OperatorName),
		SpeedClass:   classifySpeed(raw.ChargerType, raw.Output),
		KindName:     lookupOrRaw(kindNames, raw.KindCode, raw.KindCode),
		KindDetail:   lookupOrRaw(kindDetailNames, raw.KindDetailCode, raw.KindDetailCode),

		EffectiveCapacityKW: capacity,
		CapacityParsed:      parsed,

		Geo: ParseGeo(raw.Lat, raw.Lng),
	}
}

// classifyRegion buckets a zcode into 수도권 / 5대광역시 / 지방. Unlisted codes
// are 지방.
func classifyRegion(code string) RegionBucket {
	code = strings.TrimSpace(code)
	switch {
	case capitalAreaCodes[code]:
		return BucketCapitalArea
	case metroCityCodes[code]:
		return BucketMetroCities
	default:
		return BucketProvincial
	}
}

// classifySpeed applies the two-tier slow/fast rule. Type codes in the
// always-slow set are 완속 outright. Fast-type hardware in the output-checked
// set is still billed 완속 when the raw output text is exactly "30" — a literal
// string comparison, so "30.0" and "030" stay 급속. Everything else is 급속.
func classifySpeed(chargerType, output string) SpeedClass {
	cType := strings.TrimSpace(chargerType)
	out := strings.TrimSpace(output)

	if slowChargerTypes[cType] {
		return SpeedSlow
	}
	if outputCheckedTypes[cType] && out == "30" {
		return SpeedSlow
	}
	return SpeedFast
}

// EffectiveCapacity parses the rated output (thousands separators and
// whitespace stripped) and halves it when the sharing method text contains the
// 동시 (concurrent) marker: connectors sharing one circuit are billed at half
// nameplate. The returned bool is false when parsing failed and the 0.0
// default was substituted.
//
// The 동시 check is a loose substring match on free text, kept as-is for
// compatibility with the historical dataset even though it would also fire on
// an unrelated word containing the marker.
func EffectiveCapacity(output, method string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(output), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		value = 0.0
	}

	if strings.Contains(method, "동시") {
		value *= 0.5
	}

	return value, err == nil
}

// ParseGeo parses the latitude/longitude text fields. Any unparsable or empty
// value yields an invalid Geo — a missing coordinate, never a (0,0) point.
func ParseGeo(lat, lng string) Geo {
	latV, okLat := parseCoordinate(lat)
	lonV, okLon := parseCoordinate(lng)
	if !okLat || !okLon {
		return Geo{}
	}
	return Geo{Lat: latV, Lon: lonV, Valid: true}
}

func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lookupOrRaw(table map[string]string, code, fallback string) string {
	if name, ok := table[strings.TrimSpace(code)]; ok {
		return name
	}
	return fallback
}
