// Package export renders estimation results as printable and on-screen
// documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	qrSize       = 30.0 // QR code size in mm
)

// billOfMaterials is the data encoded into the report's QR code, so the
// shopping list can be picked up on a phone at the counter.
type billOfMaterials struct {
	Project         string  `json:"project"`
	PerimeterMeters float64 `json:"perimeter_m"`
	Cans            int     `json:"cans,omitempty"`
	ExteriorCans    int     `json:"exterior_cans,omitempty"`
	InteriorCans    int     `json:"interior_cans,omitempty"`
	Screws          int     `json:"screws"`
	RubberMeters    float64 `json:"rubber_m"`
}

// WritePDF generates the printable material report: project header, totals,
// the per-window breakdown table, and a QR-coded bill of materials. All
// numbers are taken verbatim from the estimate.
func WritePDF(path, projectName string, est model.Estimate, generatedAt time.Time) error {
	if len(est.Entries) == 0 {
		return fmt.Errorf("no window entries to report")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, "Window Installation Material Estimate", "", 0, "L", false, 0, "")

	// Meta line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft, marginTop+10)
	meta := fmt.Sprintf("Project: %s  |  Generated: %s", projectName, generatedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(contentWidth, 6, meta, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+18, pageWidth-marginRight, marginTop+18)

	y := marginTop + 24
	y = renderTotals(pdf, est, y)
	y = renderEntryTable(pdf, est, y+6)
	renderQR(pdf, projectName, est, y+6)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Estimation only - always confirm quantities on-site.", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderTotals draws the project totals block and returns the next free Y.
func renderTotals(pdf *fpdf.Fpdf, est model.Estimate, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Project Totals", "", 0, "L", false, 0, "")
	y += 9

	type summaryItem struct {
		label string
		value string
	}

	items := []summaryItem{
		{"Total Window Perimeter", fmt.Sprintf("%.1f m", est.TotalPerimeterMeters)},
		{"Waste Factor Applied", fmt.Sprintf("%.0f%%", est.WasteFactorPercent)},
	}

	if est.Mode == model.ModeSingle {
		items = append(items,
			summaryItem{"Silicone Length (both sides)", fmt.Sprintf("%.1f m", est.SiliconeLengthMeters)},
			summaryItem{"Silicone Length with Waste", fmt.Sprintf("%.1f m", est.SiliconeLengthWithWaste)},
			summaryItem{"Silicone Cans to Purchase", fmt.Sprintf("%d", est.CansNeeded)},
		)
	} else {
		items = append(items,
			summaryItem{"Exterior Length with Waste", fmt.Sprintf("%.1f m", est.ExteriorLengthMeters)},
			summaryItem{"Exterior Cans to Purchase", fmt.Sprintf("%d", est.ExteriorCansNeeded)},
			summaryItem{"Interior Length with Waste", fmt.Sprintf("%.1f m", est.InteriorLengthMeters)},
			summaryItem{"Interior Cans to Purchase", fmt.Sprintf("%d", est.InteriorCansNeeded)},
		)
	}

	items = append(items,
		summaryItem{"Screws", fmt.Sprintf("%d", est.TotalScrewsNeeded)},
		summaryItem{"Rubber Gasket", fmt.Sprintf("%.1f m", est.TotalRubberLengthMeters)},
	)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(70, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	return y
}

// renderEntryTable draws the per-window breakdown and returns the next free Y.
func renderEntryTable(pdf *fpdf.Fpdf, est model.Estimate, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Window Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 26, 26, 18, 27, 27}
	headers := []string{"Window", "Width (m)", "Height (m)", "Qty", "Perim. (m)", "Total (m)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range est.Entries {
		xPos = marginLeft
		rowData := []string{
			row.Entry.Label,
			fmt.Sprintf("%.2f", row.Entry.Width),
			fmt.Sprintf("%.2f", row.Entry.Height),
			fmt.Sprintf("%d", row.Entry.Quantity),
			fmt.Sprintf("%.2f", row.PerimeterSingle),
			fmt.Sprintf("%.2f", row.PerimeterTotal),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	return y
}

// renderQR draws the bill-of-materials QR code with a short caption.
func renderQR(pdf *fpdf.Fpdf, projectName string, est model.Estimate, y float64) {
	bom := billOfMaterials{
		Project:         projectName,
		PerimeterMeters: est.TotalPerimeterMeters,
		Cans:            est.CansNeeded,
		ExteriorCans:    est.ExteriorCansNeeded,
		InteriorCans:    est.InteriorCansNeeded,
		Screws:          est.TotalScrewsNeeded,
		RubberMeters:    est.TotalRubberLengthMeters,
	}

	data, err := json.Marshal(bom)
	if err != nil {
		return
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		// The QR is a convenience; the report stays valid without it
		return
	}

	if y+qrSize > pageHeight-marginBottom-6 {
		pdf.AddPage()
		y = marginTop
	}

	pdf.RegisterImageOptionsReader("bom_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("bom_qr", marginLeft, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft+qrSize+4, y+qrSize/2-2)
	pdf.CellFormat(contentWidth-qrSize-4, 4, "Scan for the bill of materials", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
