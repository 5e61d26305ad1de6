package model

import "math"

// gasketRunRatio is the empirical ratio of gasket run to window perimeter.
const gasketRunRatio = 3.0

// EntryEstimate holds the per-row derived quantities, retained alongside the
// original entry for display and audit.
type EntryEstimate struct {
	Entry           WindowEntry `json:"entry"`
	PerimeterSingle float64     `json:"perimeter_single"` // one window (m)
	PerimeterTotal  float64     `json:"perimeter_total"`  // all windows of this size (m)
}

// Estimate holds the results of a material estimation pass. Which sealant
// fields are populated depends on the mode; screw and rubber figures are
// computed in both modes. Lengths are meters at full precision, can and
// screw counts are rounded up to whole purchasable units.
type Estimate struct {
	Mode               SealantMode `json:"mode"`
	WasteFactorPercent float64     `json:"waste_factor_percent"`

	TotalPerimeterMeters float64 `json:"total_perimeter_meters"`

	// Single mode: sealant runs along both faces of every joint.
	SiliconeLengthMeters    float64 `json:"silicone_length_meters,omitempty"`     // both sides, before waste
	SiliconeLengthWithWaste float64 `json:"silicone_length_with_waste,omitempty"` // both sides, after waste
	CansNeeded              int     `json:"cans_needed,omitempty"`

	// Dual mode: each side already represents one physical face, so no
	// both-sides doubling applies here.
	ExteriorLengthMeters float64 `json:"exterior_length_meters,omitempty"` // after waste
	InteriorLengthMeters float64 `json:"interior_length_meters,omitempty"` // after waste
	ExteriorCansNeeded   int     `json:"exterior_cans_needed,omitempty"`
	InteriorCansNeeded   int     `json:"interior_cans_needed,omitempty"`

	TotalScrewsNeeded       int     `json:"total_screws_needed"`
	TotalRubberLengthMeters float64 `json:"total_rubber_length_meters"`

	Entries []EntryEstimate `json:"entries"`
}

// EstimateMaterials computes procurement quantities for a window list.
// It validates all input up front and either returns a complete Estimate or
// a *ValidationError; no partial results are produced. Degenerate joint
// geometry or screw spacing zero out the affected count without failing,
// since the remaining figures stay meaningful.
func EstimateMaterials(entries []WindowEntry, cfg MaterialConfig) (Estimate, error) {
	if err := validateEntries(entries); err != nil {
		return Estimate{}, err
	}
	if err := validateConfig(cfg); err != nil {
		return Estimate{}, err
	}

	est := Estimate{
		Mode:               cfg.Mode,
		WasteFactorPercent: cfg.WasteFactorPercent,
		Entries:            make([]EntryEstimate, len(entries)),
	}

	for i, e := range entries {
		single := e.Perimeter()
		total := single * float64(e.Quantity)
		est.Entries[i] = EntryEstimate{
			Entry:           e,
			PerimeterSingle: single,
			PerimeterTotal:  total,
		}
		est.TotalPerimeterMeters += total
	}

	waste := cfg.WasteMultiplier()

	switch cfg.Mode {
	case ModeSingle:
		// Sealant is applied to both faces of every joint.
		est.SiliconeLengthMeters = est.TotalPerimeterMeters * 2
		est.SiliconeLengthWithWaste = est.SiliconeLengthMeters * waste
		est.CansNeeded = ceilCount(est.SiliconeLengthWithWaste / cfg.MetersPerCan)

	case ModeDual:
		est.ExteriorLengthMeters = est.TotalPerimeterMeters * waste
		est.InteriorLengthMeters = est.TotalPerimeterMeters * waste
		est.ExteriorCansNeeded = cansForSide(est.ExteriorLengthMeters, cfg.Exterior)
		est.InteriorCansNeeded = cansForSide(est.InteriorLengthMeters, cfg.Interior)
	}

	// Screws sit at fixed physical intervals, so the waste factor never
	// applies to them.
	if cfg.ScrewSpacingCm > 0 {
		est.TotalScrewsNeeded = ceilCount(est.TotalPerimeterMeters / (cfg.ScrewSpacingCm / 100))
	}

	est.TotalRubberLengthMeters = est.TotalPerimeterMeters * gasketRunRatio * waste

	return est, nil
}

// cansForSide computes the can count for one sealant side. Degenerate joint
// geometry yields zero cans; the length figure is the caller's concern and
// does not depend on geometry.
func cansForSide(lengthWithWaste float64, spec SealantSpec) int {
	metersPerCan := spec.MetersPerCan()
	if metersPerCan <= 0 {
		return 0
	}
	return ceilCount(lengthWithWaste / metersPerCan)
}

func ceilCount(x float64) int {
	return int(math.Ceil(x))
}

func validateEntries(entries []WindowEntry) error {
	if len(entries) == 0 {
		return &ValidationError{Field: "entries", Reason: "must contain at least one window"}
	}
	for i, e := range entries {
		row := i + 1
		if math.IsNaN(e.Width) || e.Width <= 0 {
			return &ValidationError{Row: row, Field: "width", Reason: "must be a positive number of meters"}
		}
		if math.IsNaN(e.Height) || e.Height <= 0 {
			return &ValidationError{Row: row, Field: "height", Reason: "must be a positive number of meters"}
		}
		if e.Quantity < 1 {
			return &ValidationError{Row: row, Field: "quantity", Reason: "must be at least 1"}
		}
	}
	return nil
}

func validateConfig(cfg MaterialConfig) error {
	switch cfg.Mode {
	case ModeSingle:
		if math.IsNaN(cfg.MetersPerCan) || cfg.MetersPerCan <= 0 {
			return &ValidationError{Field: "meters_per_can", Reason: "must be positive in single mode"}
		}
	case ModeDual:
		// Zero or negative joint geometry degrades the can count to zero
		// instead of failing, but every value must still be a number.
		if err := validateSpec("exterior", cfg.Exterior); err != nil {
			return err
		}
		if err := validateSpec("interior", cfg.Interior); err != nil {
			return err
		}
	default:
		return &ValidationError{Field: "mode", Reason: "must be \"single\" or \"dual\""}
	}
	if math.IsNaN(cfg.WasteFactorPercent) || cfg.WasteFactorPercent < 0 {
		return &ValidationError{Field: "waste_factor_percent", Reason: "must be zero or positive"}
	}
	if math.IsNaN(cfg.ScrewSpacingCm) {
		return &ValidationError{Field: "screw_spacing_cm", Reason: "must be a number"}
	}
	return nil
}

func validateSpec(side string, spec SealantSpec) error {
	if math.IsNaN(spec.JointWidthMm) {
		return &ValidationError{Field: side + ".joint_width_mm", Reason: "must be a number"}
	}
	if math.IsNaN(spec.JointDepthMm) {
		return &ValidationError{Field: side + ".joint_depth_mm", Reason: "must be a number"}
	}
	if math.IsNaN(spec.CanVolumeMl) {
		return &ValidationError{Field: side + ".can_volume_ml", Reason: "must be a number"}
	}
	return nil
}
