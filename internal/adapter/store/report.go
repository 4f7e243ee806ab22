package store

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/evwatch/charger-alerts/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReportWriter exports the full normalized dataset as the dated xlsx workbook
// the business side reviews (전기차충전소_YYYYMMDD.xlsx). Derived business
// columns lead, raw registry columns follow.
type ReportWriter struct {
	dir string
}

func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

const reportSheet = "충전소"

var reportHeader = []interface{}{
	"권역", "지역명", "운영기관", "구분", "시설", "시설상세",
	"충전소명", "주소", "충전소ID", "지역코드", "운영기관ID",
	"충전기타입", "출력", "방식", "용량(kW)", "위도", "경도",
}

// Write saves the workbook for the given run date and returns its path.
func (r *ReportWriter) Write(records []domain.NormalizedRecord, date time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return "", fmt.Errorf("name report sheet: %w", err)
	}

	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}

	for i, rec := range records {
		row := []interface{}{
			string(rec.RegionBucket), rec.RegionName, rec.Operator, string(rec.SpeedClass),
			rec.KindName, rec.KindDetail,
			rec.Name, rec.Address, rec.StationID, rec.RegionCode, rec.OperatorID,
			rec.ChargerType, rec.Output, rec.Method, rec.EffectiveCapacityKW,
			rec.Lat, rec.Lng,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("report cell name: %w", err)
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return "", fmt.Errorf("write report row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(r.dir, fmt.Sprintf("전기차충전소_%s.xlsx", date.Format("20060102")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
