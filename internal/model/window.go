package model

import "github.com/google/uuid"

// WindowEntry represents one row of the project table: a window size and
// how many identical windows of that size the project contains.
// Dimensions are in meters.
type WindowEntry struct {
	ID       string  `json:"id"`
	Label    string  `json:"label,omitempty"`
	Width    float64 `json:"width"`  // meters
	Height   float64 `json:"height"` // meters
	Quantity int     `json:"quantity"`
}

func NewWindowEntry(label string, w, h float64, qty int) WindowEntry {
	return WindowEntry{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// Perimeter returns the frame perimeter of a single window in meters.
func (e WindowEntry) Perimeter() float64 {
	return 2 * (e.Width + e.Height)
}

// Project ties a window list and its material configuration together for
// save/load. The name is display-only and never enters the calculation.
type Project struct {
	Name    string         `json:"name"`
	Entries []WindowEntry  `json:"entries"`
	Config  MaterialConfig `json:"config"`
}

func NewProject() Project {
	return Project{
		Name:    "Untitled",
		Entries: []WindowEntry{},
		Config:  DefaultConfig(),
	}
}

// SampleEntries returns the example dataset offered as a download template
// to illustrate the expected input shape.
func SampleEntries() []WindowEntry {
	return []WindowEntry{
		NewWindowEntry("Living room", 1.2, 1.5, 10),
		NewWindowEntry("Bathroom", 0.6, 0.6, 5),
		NewWindowEntry("Balcony door", 2.0, 1.8, 8),
	}
}
