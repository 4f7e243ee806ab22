package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySpeed(t *testing.T) {
	tests := []struct {
		name        string
		chargerType string
		output      string
		expected    SpeedClass
	}{
		{"always-slow type 02", "02", "100", SpeedSlow},
		{"always-slow type 07", "07", "350", SpeedSlow},
		{"always-slow type 08", "08", "30", SpeedSlow},
		{"always-slow ignores output", "02", "garbage", SpeedSlow},
		{"checked type with 30", "01", "30", SpeedSlow},
		{"checked type with padded 30", "04", " 30 ", SpeedSlow},
		{"checked type with 30.0 stays fast", "01", "30.0", SpeedFast},
		{"checked type with 030 stays fast", "01", "030", SpeedFast},
		{"checked type with 100", "03", "100", SpeedFast},
		{"checked type empty output", "05", "", SpeedFast},
		{"unknown type", "99", "30", SpeedFast},
		{"empty type", "", "30", SpeedFast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifySpeed(tt.chargerType, tt.output))
		})
	}
}

func TestEffectiveCapacity(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		method   string
		expected float64
		parsed   bool
	}{
		{"plain value", "100", "단독", 100, true},
		{"thousands separator", "1,000", "단독", 1000, true},
		{"surrounding whitespace", " 50 ", "", 50, true},
		{"concurrent halves", "100", "동시", 50, true},
		{"concurrent marker inside text", "200", "2채널 동시충전", 100, true},
		{"unparsable defaults to zero", "abc", "단독", 0, false},
		{"unparsable concurrent stays zero", "abc", "동시", 0, false},
		{"empty output", "", "", 0, false},
		{"decimal value", "7.7", "", 7.7, true},
		{"negative clamps to zero", "-50", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, parsed := EffectiveCapacity(tt.output, tt.method)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.parsed, parsed)
		})
	}
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected RegionBucket
	}{
		{"seoul", "11", BucketCapitalArea},
		{"incheon", "28", BucketCapitalArea},
		{"gyeonggi", "41", BucketCapitalArea},
		{"busan", "26", BucketMetroCities},
		{"daejeon", "30", BucketMetroCities},
		{"jeju", "50", BucketProvincial},
		{"sejong", "36", BucketProvincial},
		{"unknown code", "99", BucketProvincial},
		{"empty code", "", BucketProvincial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyRegion(tt.code))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("known codes resolve", func(t *testing.T) {
		rec := Normalize(StationRecord{
			StationID:      "ST001",
			RegionCode:     "11",
			OperatorID:     "ME",
			OperatorName:   "환경부수도권대기환경청",
			ChargerType:    "01",
			Output:         "100",
			Method:         "단독",
			KindCode:       "B0",
			KindDetailCode: "B001",
			Name:           "시청 급속충전소",
			Address:        "서울특별시 중구",
			Lat:            "37.5665",
			Lng:            "126.9780",
		})

		assert.Equal(t, BucketCapitalArea, rec.RegionBucket)
		assert.Equal(t, "서울특별시", rec.RegionName)
		assert.Equal(t, "환경부", rec.Operator)
		assert.Equal(t, SpeedFast, rec.SpeedClass)
		assert.Equal(t, "주차시설", rec.KindName)
		assert.Equal(t, "공영주차장", rec.KindDetail)
		assert.Equal(t, 100.0, rec.EffectiveCapacityKW)
		assert.True(t, rec.CapacityParsed)
		require.True(t, rec.Geo.Valid)
		assert.Equal(t, 37.5665, rec.Geo.Lat)
		assert.Equal(t, 126.9780, rec.Geo.Lon)
	})

	t.Run("unknown operator falls back to free text not code", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1", OperatorID: "ZZ", OperatorName: "어느운영사"})
		assert.Equal(t, "어느운영사", rec.Operator)
	})

	t.Run("KP resolves to the short corporate name", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1", OperatorID: "KP", OperatorName: "한국전력공사"})
		assert.Equal(t, "한국전력", rec.Operator)
	})

	t.Run("unknown region keeps raw code", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1", RegionCode: "99"})
		assert.Equal(t, "99", rec.RegionName)
		assert.Equal(t, BucketProvincial, rec.RegionBucket)
	})

	t.Run("unknown kind codes pass through", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1", KindCode: "Z9", KindDetailCode: "Z999"})
		assert.Equal(t, "Z9", rec.KindName)
		assert.Equal(t, "Z999", rec.KindDetail)
	})

	t.Run("malformed coordinates become missing not zero", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1", Lat: "not-a-number", Lng: "127.0"})
		assert.False(t, rec.Geo.Valid)
	})

	t.Run("empty coordinates become missing", func(t *testing.T) {
		rec := Normalize(StationRecord{StationID: "S1"})
		assert.False(t, rec.Geo.Valid)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, StationRecord{StationID: "ST001"}.Validate())
	assert.ErrorIs(t, StationRecord{}.Validate(), ErrMissingStationID)
	assert.ErrorIs(t, StationRecord{StationID: "   "}.Validate(), ErrMissingStationID)
}

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "12345", CanonicalID(" 12345 "))
	assert.Equal(t, "ST001", CanonicalID("ST001"))
	assert.Equal(t, "", CanonicalID("  "))
}
