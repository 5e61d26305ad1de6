package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// templateHeaders are the required columns of the input shape.
var templateHeaders = []string{"Width", "Height", "Quantity"}

// TemplateCSV returns the example dataset as CSV bytes, illustrating the
// expected input shape for file uploads.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(templateHeaders)
	for _, e := range model.SampleEntries() {
		_ = w.Write([]string{
			strconv.FormatFloat(e.Width, 'f', -1, 64),
			strconv.FormatFloat(e.Height, 'f', -1, 64),
			strconv.Itoa(e.Quantity),
		})
	}
	w.Flush()

	return buf.Bytes()
}

// WriteTemplateCSV writes the example dataset to a CSV file.
func WriteTemplateCSV(path string) error {
	return os.WriteFile(path, TemplateCSV(), 0644)
}

// WriteTemplateXLSX writes the example dataset to an Excel workbook with a
// bold header row.
func WriteTemplateXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerRow := make([]interface{}, len(templateHeaders))
	for i, h := range templateHeaders {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "C1", boldStyle)
	}

	for i, e := range model.SampleEntries() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.Width, e.Height, e.Quantity}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(path)
}
