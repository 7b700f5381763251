package cutlist

import (
	"math"

	"github.com/mpaky95/cabinetry/internal/domain"
)

// PurchaseEstimate is the sheet-buying summary for one cutlist cut from one
// material.
type PurchaseEstimate struct {
	TotalPartArea     float64 `json:"totalPartArea"`
	SheetArea         float64 `json:"sheetArea"`
	SheetsNeededExact float64 `json:"sheetsNeededExact"`
	SheetsNeededMin   int     `json:"sheetsNeededMin"`
	SheetsWithWaste   int     `json:"sheetsWithWaste"`
	WastePercent      float64 `json:"wastePercent"`
	EstimatedCost     float64 `json:"estimatedCost"`
	KerfWidth         float64 `json:"kerfWidth"`
}

// Estimate computes how many sheets of a material a cutlist needs. Each
// part's footprint is its width x height grown by the kerf on both axes;
// parts without both axes (banding strips, hardware) contribute nothing.
// wastePercent adds a safety margin on top of the exact sheet count.
func Estimate(list Cutlist, material domain.Material, kerfWidth, wastePercent float64) PurchaseEstimate {
	var totalPartArea float64
	for _, row := range list.Rows {
		if row.Dimensions.Width == nil || row.Dimensions.Height == nil {
			continue
		}
		w := *row.Dimensions.Width + kerfWidth
		h := *row.Dimensions.Height + kerfWidth
		totalPartArea += w * h * float64(row.Quantity)
	}

	est := PurchaseEstimate{
		TotalPartArea: totalPartArea,
		WastePercent:  wastePercent,
		KerfWidth:     kerfWidth,
	}

	sheetArea := material.SheetWidth * material.SheetHeight
	if sheetArea <= 0 {
		return est
	}
	est.SheetArea = sheetArea
	est.SheetsNeededExact = totalPartArea / sheetArea
	est.SheetsNeededMin = int(math.Ceil(est.SheetsNeededExact))

	wasteFactor := 1.0 + wastePercent/100.0
	est.SheetsWithWaste = int(math.Ceil(est.SheetsNeededExact * wasteFactor))
	if est.SheetsWithWaste < est.SheetsNeededMin {
		est.SheetsWithWaste = est.SheetsNeededMin
	}
	est.EstimatedCost = float64(est.SheetsWithWaste) * material.PricePerSheet

	return est
}
