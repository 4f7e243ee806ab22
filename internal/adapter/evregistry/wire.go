package evregistry

import (
	"bytes"
	"encoding/json"

	"github.com/evwatch/charger-alerts/internal/domain"
)

// Registry wire format. Two quirks are handled here so the rest of the code
// never sees them: items.item is an object instead of an array when a page
// holds a single record, and numeric-looking fields (statId, zcode, output,
// lat, lng) have shipped as both JSON strings and JSON numbers across
// registry releases.

type chargerInfoResponse struct {
	Items struct {
		Item itemList `json:"item"`
	} `json:"items"`
	TotalCount int `json:"totalCount"`
}

func (r chargerInfoResponse) records() []domain.StationRecord {
	out := make([]domain.StationRecord, 0, len(r.Items.Item))
	for _, it := range r.Items.Item {
		out = append(out, it.toRecord())
	}
	return out
}

type itemList []wireItem

func (l *itemList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var items []wireItem
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var single wireItem
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = itemList{single}
	return nil
}

type wireItem struct {
	StatID     flexString `json:"statId"`
	ZCode      flexString `json:"zcode"`
	BusiID     string     `json:"busiId"`
	BusiNm     string     `json:"busiNm"`
	ChgerType  flexString `json:"chgerType"`
	Output     flexString `json:"output"`
	Method     string     `json:"method"`
	Kind       string     `json:"kind"`
	KindDetail string     `json:"kindDetail"`
	StatNm     string     `json:"statNm"`
	Addr       string     `json:"addr"`
	Lat        flexString `json:"lat"`
	Lng        flexString `json:"lng"`
}

func (it wireItem) toRecord() domain.StationRecord {
	return domain.StationRecord{
		StationID:      string(it.StatID),
		RegionCode:     string(it.ZCode),
		OperatorID:     it.BusiID,
		OperatorName:   it.BusiNm,
		ChargerType:    string(it.ChgerType),
		Output:         string(it.Output),
		Method:         it.Method,
		KindCode:       it.Kind,
		KindDetailCode: it.KindDetail,
		Name:           it.StatNm,
		Address:        it.Addr,
		Lat:            string(it.Lat),
		Lng:            string(it.Lng),
	}
}

// flexString accepts a JSON string or number and keeps the raw token text.
// Preserving the token verbatim matters: the "30" slow-charger exception and
// snapshot identifier comparison are both literal string checks, so "30" and
// 30 must arrive identical while "30.0" stays distinct.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	// Unquoted token (number, bool): keep the raw text.
	*s = flexString(data)
	return nil
}
