// Command mockregistry serves a local stand-in for the public EV charger
// registry so the batch job can be exercised end to end without a data.go.kr
// key. It generates a deterministic dataset per region code and answers the
// same paginated getChargerInfo queries the real endpoint does.
//
// Usage:
//
//	go run ./cmd/mockregistry -addr :8085 -per-region 25
//	REGISTRY_BASE_URL=http://localhost:8085/getChargerInfo DATA_API_KEY=mock go run ./cmd/alertbatch
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/evwatch/charger-alerts/internal/domain"
)

type mockItem struct {
	StatID     string `json:"statId"`
	ZCode      string `json:"zcode"`
	BusiID     string `json:"busiId"`
	BusiNm     string `json:"busiNm"`
	ChgerType  string `json:"chgerType"`
	Output     string `json:"output"`
	Method     string `json:"method"`
	Kind       string `json:"kind"`
	KindDetail string `json:"kindDetail"`
	StatNm     string `json:"statNm"`
	Addr       string `json:"addr"`
	Lat        string `json:"lat"`
	Lng        string `json:"lng"`
}

type mockResponse struct {
	Items struct {
		Item []mockItem `json:"item"`
	} `json:"items"`
	TotalCount int `json:"totalCount"`
}

func main() {
	addr := flag.String("addr", ":8085", "listen address")
	perRegion := flag.Int("per-region", 25, "connector records generated per region")
	seed := flag.Int64("seed", 42, "random seed for the generated dataset")
	flag.Parse()

	datasets := generate(*perRegion, *seed)

	http.HandleFunc("/getChargerInfo", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("serviceKey") == "" {
			http.Error(w, "SERVICE_KEY_IS_NOT_REGISTERED_ERROR", http.StatusUnauthorized)
			return
		}

		zcode := q.Get("zcode")
		page, _ := strconv.Atoi(q.Get("pageNo"))
		rows, _ := strconv.Atoi(q.Get("numOfRows"))
		if page < 1 {
			page = 1
		}
		if rows < 1 {
			rows = 10
		}

		items := datasets[zcode]
		start := (page - 1) * rows
		if start > len(items) {
			start = len(items)
		}
		end := start + rows
		if end > len(items) {
			end = len(items)
		}

		var resp mockResponse
		resp.Items.Item = items[start:end]
		resp.TotalCount = len(items)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("encode response: %v", err)
		}
	})

	total := 0
	for _, items := range datasets {
		total += len(items)
	}
	log.Printf("mock registry listening on %s (%d records across %d regions)", *addr, total, len(datasets))
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// generate builds a stable per-region dataset. Roughly a third of the
// connectors are slow chargers so speed classification has both branches to
// chew on, and coordinates cluster around each region's anchor point.
func generate(perRegion int, seed int64) map[string][]mockItem {
	rng := rand.New(rand.NewSource(seed))
	operators := []string{"ME", "KP", "HE", "PW", "EV"}
	out := make(map[string][]mockItem)

	for _, zcode := range domain.RegionCodes() {
		anchorLat := 33.0 + rng.Float64()*5.0
		anchorLng := 126.0 + rng.Float64()*3.0

		items := make([]mockItem, 0, perRegion)
		for i := 0; i < perRegion; i++ {
			item := mockItem{
				StatID:     fmt.Sprintf("MK%s%04d", zcode, i),
				ZCode:      zcode,
				BusiID:     operators[rng.Intn(len(operators))],
				Kind:       "B0",
				KindDetail: "B001",
				StatNm:     fmt.Sprintf("모의충전소 %s-%d", zcode, i),
				Addr:       fmt.Sprintf("지역 %s 테스트로 %d", zcode, i),
				Lat:        strconv.FormatFloat(anchorLat+rng.Float64()*0.2, 'f', 6, 64),
				Lng:        strconv.FormatFloat(anchorLng+rng.Float64()*0.2, 'f', 6, 64),
			}
			if i%3 == 0 {
				item.ChgerType = "02"
				item.Output = "7"
			} else {
				item.ChgerType = "04"
				item.Output = "100"
				if i%5 == 0 {
					item.Method = "동시"
				}
			}
			items = append(items, item)
		}
		out[zcode] = items
	}
	return out
}
