// Package importer reads window lists from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Salmanisco/silicon-calc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Entries  []model.WindowEntry
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
}

// columnRoles maps accepted header spellings (lowercase) to the column role
// they identify.
var columnRoles = map[string]string{
	"label": "label", "name": "label", "room": "label", "location": "label",
	"window": "label", "description": "label", "desc": "label", "item": "label",

	"width": "width", "w": "width", "width (m)": "width",
	"width (meters)": "width", "width_m": "width",

	"height": "height", "h": "height", "height (m)": "height",
	"height (meters)": "height", "height_m": "height",

	"quantity": "quantity", "qty": "quantity", "count": "quantity",
	"num": "quantity", "amount": "quantity", "pcs": "quantity", "pieces": "quantity",
}

// readRecords parses CSV data with the given delimiter. Quoting is lax and
// rows may vary in length; per-row validation happens later.
func readRecords(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// DetectCSVDelimiter determines the most likely delimiter for the given CSV
// content, choosing among comma, semicolon, tab, and pipe. Consistency of the
// column count across lines dominates; the column count itself breaks ties.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0

	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readRecords(bytes.NewReader(data), delim)
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		if cols < 2 {
			continue
		}

		consistent := 0
		for _, row := range records {
			if len(row) == cols {
				consistent++
			}
		}
		if score := consistent*10 + cols; score > bestScore {
			best, bestScore = delim, score
		}
	}

	return best
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive against the known header spellings; the first
// matching column wins for each role. When no cell looks like a header the
// mapping falls back to positional Width, Height, Quantity and the second
// return value is false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1}

	found := false
	for i, cell := range row {
		role, ok := columnRoles[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		found = true
		switch {
		case role == "label" && mapping.Label == -1:
			mapping.Label = i
		case role == "width" && mapping.Width == -1:
			mapping.Width = i
		case role == "height" && mapping.Height == -1:
			mapping.Height = i
		case role == "quantity" && mapping.Quantity == -1:
			mapping.Quantity = i
		}
	}

	if !found {
		return ColumnMapping{Label: -1, Width: 0, Height: 1, Quantity: 2}, false
	}
	return mapping, true
}

// cellAt returns the trimmed cell at idx, or "" when the column is absent.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// blankRow reports whether every cell in the row is empty.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDimension reads a required numeric cell. The name appears in the
// error message as-is.
func parseDimension(row []string, idx int, name, rowLabel string) (float64, string) {
	raw := cellAt(row, idx)
	if raw == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, raw)
	}
	return v, ""
}

// parseRow extracts a WindowEntry from a row using the given column mapping.
// Dimensions are expected in meters. Returns the entry and any error message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, entryCount int) (model.WindowEntry, string) {
	label := cellAt(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Window %d", entryCount+1)
	}

	width, msg := parseDimension(row, mapping.Width, "width", rowLabel)
	if msg != "" {
		return model.WindowEntry{}, msg
	}
	height, msg := parseDimension(row, mapping.Height, "height", rowLabel)
	if msg != "" {
		return model.WindowEntry{}, msg
	}

	qtyStr := cellAt(row, mapping.Quantity)
	if qtyStr == "" {
		return model.WindowEntry{}, fmt.Sprintf("%s: Missing quantity value", rowLabel)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.WindowEntry{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr)
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return model.WindowEntry{}, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel)
	}

	return model.NewWindowEntry(label, width, height, qty), ""
}

// ImportCSV imports window entries from a CSV file, auto-detecting the
// delimiter and mapping columns by header names.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	var warnings []string
	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readRecords(bytes.NewReader(data), delimiter)
	if err != nil {
		return ImportResult{Warnings: warnings, Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Warnings: warnings, Errors: []string{"File is empty"}}
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports window entries from a CSV stream when the
// delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readRecords(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}
	return importFromRows(records, "Line", nil)
}

// ImportExcel imports window entries from the first sheet of an .xlsx file.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open Excel file: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"Excel file has no sheets"}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read Excel data: %v", err)}}
	}
	if len(rows) == 0 {
		return ImportResult{Errors: []string{"Sheet is empty"}}
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import path for CSV and Excel data: detect the
// header, map columns, parse each row.
func importFromRows(rows [][]string, rowPrefix string, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	switch {
	case hasHeader:
		start = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	case len(rows[0]) >= 3:
		// A non-numeric first cell means an unrecognized header; skip it and
		// keep the positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
			start = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := start; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		entry, msg := parseRow(rows[i], mapping, rowLabel, len(result.Entries))
		if msg != "" {
			result.Errors = append(result.Errors, msg)
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}
