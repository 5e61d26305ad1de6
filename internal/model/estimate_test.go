package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleConfig(metersPerCan, wastePct float64) MaterialConfig {
	return MaterialConfig{
		Mode:               ModeSingle,
		WasteFactorPercent: wastePct,
		MetersPerCan:       metersPerCan,
	}
}

func dualConfig(wastePct, screwSpacingCm float64) MaterialConfig {
	return MaterialConfig{
		Mode:               ModeDual,
		WasteFactorPercent: wastePct,
		Exterior:           SealantSpec{JointWidthMm: 10, JointDepthMm: 10, CanVolumeMl: 100}, // 1 m/can
		Interior:           SealantSpec{JointWidthMm: 5, JointDepthMm: 5, CanVolumeMl: 50},    // 2 m/can
		ScrewSpacingCm:     screwSpacingCm,
	}
}

func TestEstimateSingleMaterial(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, singleConfig(10.0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.TotalPerimeterMeters != 4.0 {
		t.Errorf("expected perimeter 4.0, got %.2f", est.TotalPerimeterMeters)
	}
	// Both sides of the joint: 4m perimeter -> 8m of sealant
	if est.SiliconeLengthMeters != 8.0 {
		t.Errorf("expected silicone length 8.0, got %.2f", est.SiliconeLengthMeters)
	}
	if est.SiliconeLengthWithWaste != 8.0 {
		t.Errorf("expected length with waste 8.0, got %.2f", est.SiliconeLengthWithWaste)
	}
	if est.CansNeeded != 1 {
		t.Errorf("expected 1 can, got %d", est.CansNeeded)
	}
}

func TestEstimateSingleMaterialWaste(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, singleConfig(10.0, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 8m * 1.5 = 12m -> 2 cans of 10m
	if est.SiliconeLengthWithWaste != 12.0 {
		t.Errorf("expected length with waste 12.0, got %.2f", est.SiliconeLengthWithWaste)
	}
	if est.CansNeeded != 2 {
		t.Errorf("expected 2 cans, got %d", est.CansNeeded)
	}
}

func TestEstimateDualMaterial(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	cfg := dualConfig(0, 40)
	est, err := EstimateMaterials(entries, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.TotalPerimeterMeters != 4.0 {
		t.Errorf("expected perimeter 4.0, got %.2f", est.TotalPerimeterMeters)
	}
	// Dual mode never doubles: each side is one physical face
	if est.ExteriorLengthMeters != 4.0 || est.InteriorLengthMeters != 4.0 {
		t.Errorf("expected side lengths 4.0/4.0, got %.2f/%.2f",
			est.ExteriorLengthMeters, est.InteriorLengthMeters)
	}
	if est.ExteriorCansNeeded != 4 {
		t.Errorf("expected 4 exterior cans, got %d", est.ExteriorCansNeeded)
	}
	if est.InteriorCansNeeded != 2 {
		t.Errorf("expected 2 interior cans, got %d", est.InteriorCansNeeded)
	}
	if est.TotalScrewsNeeded != 10 {
		t.Errorf("expected 10 screws, got %d", est.TotalScrewsNeeded)
	}
	if est.TotalRubberLengthMeters != 12.0 {
		t.Errorf("expected 12.0m rubber, got %.2f", est.TotalRubberLengthMeters)
	}
}

func TestEstimateDualMaterialWaste(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, dualConfig(50, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.ExteriorLengthMeters != 6.0 {
		t.Errorf("expected exterior length 6.0, got %.2f", est.ExteriorLengthMeters)
	}
	if est.ExteriorCansNeeded != 6 {
		t.Errorf("expected 6 exterior cans, got %d", est.ExteriorCansNeeded)
	}
	if est.InteriorCansNeeded != 3 {
		t.Errorf("expected 3 interior cans, got %d", est.InteriorCansNeeded)
	}
	// Screws are placed at fixed intervals on the raw perimeter; waste
	// must not inflate them.
	if est.TotalScrewsNeeded != 20 {
		t.Errorf("expected 20 screws, got %d", est.TotalScrewsNeeded)
	}
	if est.TotalRubberLengthMeters != 18.0 {
		t.Errorf("expected 18.0m rubber, got %.2f", est.TotalRubberLengthMeters)
	}
}

func TestEstimateMultipleRows(t *testing.T) {
	entries := []WindowEntry{
		{Width: 1.0, Height: 1.0, Quantity: 1}, // 4m
		{Width: 2.0, Height: 2.0, Quantity: 2}, // 16m
	}
	cfg := MaterialConfig{
		Mode:           ModeDual,
		Exterior:       SealantSpec{JointWidthMm: 10, JointDepthMm: 10, CanVolumeMl: 100}, // 1 m/can
		Interior:       SealantSpec{JointWidthMm: 10, JointDepthMm: 2, CanVolumeMl: 100},  // 5 m/can
		ScrewSpacingCm: 100,
	}
	est, err := EstimateMaterials(entries, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.TotalPerimeterMeters != 20.0 {
		t.Errorf("expected perimeter 20.0, got %.2f", est.TotalPerimeterMeters)
	}
	if est.ExteriorCansNeeded != 20 {
		t.Errorf("expected 20 exterior cans, got %d", est.ExteriorCansNeeded)
	}
	if est.InteriorCansNeeded != 4 {
		t.Errorf("expected 4 interior cans, got %d", est.InteriorCansNeeded)
	}
	if est.TotalScrewsNeeded != 20 {
		t.Errorf("expected 20 screws, got %d", est.TotalScrewsNeeded)
	}
	if est.TotalRubberLengthMeters != 60.0 {
		t.Errorf("expected 60.0m rubber, got %.2f", est.TotalRubberLengthMeters)
	}

	if est.Entries[0].PerimeterTotal != 4.0 || est.Entries[1].PerimeterTotal != 16.0 {
		t.Errorf("expected per-row perimeters 4.0/16.0, got %.2f/%.2f",
			est.Entries[0].PerimeterTotal, est.Entries[1].PerimeterTotal)
	}
}

func TestPerimeterOrderIndependence(t *testing.T) {
	a := []WindowEntry{
		{Width: 1.2, Height: 1.5, Quantity: 10},
		{Width: 0.6, Height: 0.6, Quantity: 5},
		{Width: 2.0, Height: 1.8, Quantity: 8},
	}
	b := []WindowEntry{a[2], a[0], a[1]}

	cfg := singleConfig(12, 10)
	ea, err := EstimateMaterials(a, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eb, err := EstimateMaterials(b, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(ea.TotalPerimeterMeters-eb.TotalPerimeterMeters) > 1e-9 {
		t.Errorf("perimeter depends on entry order: %.6f vs %.6f",
			ea.TotalPerimeterMeters, eb.TotalPerimeterMeters)
	}
	if ea.CansNeeded != eb.CansNeeded {
		t.Errorf("can count depends on entry order: %d vs %d", ea.CansNeeded, eb.CansNeeded)
	}
}

func TestWasteMonotonicity(t *testing.T) {
	entries := []WindowEntry{
		{Width: 1.7, Height: 1.3, Quantity: 3},
		{Width: 0.9, Height: 2.1, Quantity: 7},
	}

	prev, err := EstimateMaterials(entries, dualConfig(0, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, waste := range []float64{5, 10, 25, 50, 100, 150} {
		est, err := EstimateMaterials(entries, dualConfig(waste, 40))
		if err != nil {
			t.Fatalf("unexpected error at waste %.0f: %v", waste, err)
		}
		if est.ExteriorLengthMeters < prev.ExteriorLengthMeters ||
			est.ExteriorCansNeeded < prev.ExteriorCansNeeded ||
			est.InteriorCansNeeded < prev.InteriorCansNeeded ||
			est.TotalRubberLengthMeters < prev.TotalRubberLengthMeters {
			t.Errorf("increasing waste to %.0f%% decreased an output", waste)
		}
		prev = est
	}
}

func TestCeilingExactMultiple(t *testing.T) {
	// 4m perimeter -> 8m both sides; exactly 4 cans of 2m, no over-rounding
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, singleConfig(2.0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.CansNeeded != 4 {
		t.Errorf("expected exactly 4 cans for an exact multiple, got %d", est.CansNeeded)
	}
}

func TestZeroGeometryDegradation(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	cfg := dualConfig(0, 40)
	cfg.Exterior.JointWidthMm = 0

	est, err := EstimateMaterials(entries, cfg)
	if err != nil {
		t.Fatalf("zero joint geometry should not fail: %v", err)
	}
	if est.ExteriorCansNeeded != 0 {
		t.Errorf("expected 0 exterior cans for zero geometry, got %d", est.ExteriorCansNeeded)
	}
	// Length is independent of geometry and stays meaningful
	if est.ExteriorLengthMeters != 4.0 {
		t.Errorf("expected exterior length 4.0, got %.2f", est.ExteriorLengthMeters)
	}
	if est.InteriorCansNeeded != 2 {
		t.Errorf("expected interior side unaffected, got %d cans", est.InteriorCansNeeded)
	}
}

func TestZeroScrewSpacing(t *testing.T) {
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, dualConfig(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.TotalScrewsNeeded != 0 {
		t.Errorf("expected 0 screws with spacing disabled, got %d", est.TotalScrewsNeeded)
	}
}

func TestScrewsIndependentOfWaste(t *testing.T) {
	entries := []WindowEntry{{Width: 1.3, Height: 0.8, Quantity: 4}}
	for _, waste := range []float64{0, 10, 50, 100} {
		est, err := EstimateMaterials(entries, dualConfig(waste, 35))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		base, _ := EstimateMaterials(entries, dualConfig(0, 35))
		if est.TotalScrewsNeeded != base.TotalScrewsNeeded {
			t.Errorf("screw count changed with waste %.0f%%: %d vs %d",
				waste, est.TotalScrewsNeeded, base.TotalScrewsNeeded)
		}
	}
}

func TestEstimateValidation(t *testing.T) {
	valid := singleConfig(12, 10)

	nanExtWidth := dualConfig(0, 40)
	nanExtWidth.Exterior.JointWidthMm = math.NaN()
	nanIntVolume := dualConfig(0, 40)
	nanIntVolume.Interior.CanVolumeMl = math.NaN()
	nanSpacing := dualConfig(0, 40)
	nanSpacing.ScrewSpacingCm = math.NaN()

	cases := []struct {
		name    string
		entries []WindowEntry
		cfg     MaterialConfig
		row     int
		field   string
	}{
		{"empty list", nil, valid, 0, "entries"},
		{"zero width", []WindowEntry{{Width: 0, Height: 1, Quantity: 1}}, valid, 1, "width"},
		{"negative height", []WindowEntry{{Width: 1, Height: -2, Quantity: 1}}, valid, 1, "height"},
		{"zero quantity", []WindowEntry{{Width: 1, Height: 1, Quantity: 0}}, valid, 1, "quantity"},
		{"NaN width", []WindowEntry{{Width: math.NaN(), Height: 1, Quantity: 1}}, valid, 1, "width"},
		{"bad row is identified", []WindowEntry{
			{Width: 1, Height: 1, Quantity: 1},
			{Width: 1, Height: 0, Quantity: 1},
		}, valid, 2, "height"},
		{"zero yield single mode", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, singleConfig(0, 10), 0, "meters_per_can"},
		{"negative waste", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, singleConfig(12, -5), 0, "waste_factor_percent"},
		{"unknown mode", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, MaterialConfig{Mode: "triple"}, 0, "mode"},
		{"NaN exterior joint width", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, nanExtWidth, 0, "exterior.joint_width_mm"},
		{"NaN interior can volume", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, nanIntVolume, 0, "interior.can_volume_ml"},
		{"NaN screw spacing", []WindowEntry{{Width: 1, Height: 1, Quantity: 1}}, nanSpacing, 0, "screw_spacing_cm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateMaterials(tc.entries, tc.cfg)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.row, verr.Row)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestNaNGeometryRejectedNotComputed(t *testing.T) {
	// A NaN in the joint geometry must surface as a validation error, never
	// propagate through the ceiling into a nonsense can count.
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	cfg := dualConfig(10, 40)
	cfg.Exterior.JointWidthMm = math.NaN()

	est, err := EstimateMaterials(entries, cfg)
	require.Error(t, err)
	assert.Zero(t, est.ExteriorCansNeeded)
	assert.Zero(t, est.InteriorCansNeeded)
}

func TestLargeWasteFactorAccepted(t *testing.T) {
	// The practical bound is 100% but the engine accepts any non-negative value
	entries := []WindowEntry{{Width: 1.0, Height: 1.0, Quantity: 1}}
	est, err := EstimateMaterials(entries, singleConfig(10, 250))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.SiliconeLengthWithWaste != 28.0 {
		t.Errorf("expected 28.0m with 250%% waste, got %.2f", est.SiliconeLengthWithWaste)
	}
}
