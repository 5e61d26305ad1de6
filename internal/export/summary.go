package export

import (
	"fmt"
	"io"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// WriteSummary renders the on-screen result summary. Lengths are shown to
// one decimal place; the estimate itself keeps full precision.
func WriteSummary(w io.Writer, projectName string, est model.Estimate) {
	fmt.Fprintf(w, "--- Material estimate for %s ---\n", projectName)
	fmt.Fprintf(w, "Total window perimeter:  %.1f m\n", est.TotalPerimeterMeters)
	fmt.Fprintf(w, "Waste factor applied:    %.0f%%\n", est.WasteFactorPercent)

	switch est.Mode {
	case model.ModeSingle:
		fmt.Fprintf(w, "Silicone (both sides):   %.1f m\n", est.SiliconeLengthMeters)
		fmt.Fprintf(w, "Silicone with waste:     %.1f m\n", est.SiliconeLengthWithWaste)
		fmt.Fprintf(w, "Cans to purchase:        %d\n", est.CansNeeded)
	case model.ModeDual:
		fmt.Fprintf(w, "Exterior with waste:     %.1f m  (%d cans)\n", est.ExteriorLengthMeters, est.ExteriorCansNeeded)
		fmt.Fprintf(w, "Interior with waste:     %.1f m  (%d cans)\n", est.InteriorLengthMeters, est.InteriorCansNeeded)
	}

	fmt.Fprintf(w, "Screws:                  %d\n", est.TotalScrewsNeeded)
	fmt.Fprintf(w, "Rubber gasket:           %.1f m\n", est.TotalRubberLengthMeters)

	fmt.Fprintf(w, "\n%-20s %9s %9s %5s %10s %10s\n", "Window", "Width", "Height", "Qty", "Perim.", "Total")
	for _, row := range est.Entries {
		fmt.Fprintf(w, "%-20s %8.2fm %8.2fm %5d %9.2fm %9.2fm\n",
			row.Entry.Label, row.Entry.Width, row.Entry.Height,
			row.Entry.Quantity, row.PerimeterSingle, row.PerimeterTotal)
	}
}
