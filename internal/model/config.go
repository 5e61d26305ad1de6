package model

// SealantMode selects how sealant consumption is modeled.
type SealantMode string

const (
	// ModeSingle models one sealant type applied to both faces of every
	// joint, with yield given directly as meters per can.
	ModeSingle SealantMode = "single"
	// ModeDual models separate exterior and interior sealants, with yield
	// derived from the joint cross-section and the can volume.
	ModeDual SealantMode = "dual"
)

// SealantSpec describes one sealant side in dual mode: the joint geometry
// the bead has to fill and the volume of one can.
type SealantSpec struct {
	JointWidthMm float64 `json:"joint_width_mm" mapstructure:"joint_width_mm"`
	JointDepthMm float64 `json:"joint_depth_mm" mapstructure:"joint_depth_mm"`
	CanVolumeMl  float64 `json:"can_volume_ml" mapstructure:"can_volume_ml"`
}

// VolumePerMeterMl returns the bead cross-section in mm², which equals the
// milliliters consumed per linear meter of joint.
func (s SealantSpec) VolumePerMeterMl() float64 {
	return s.JointWidthMm * s.JointDepthMm
}

// MetersPerCan returns how many linear meters one can covers for this joint
// geometry, or 0 when the geometry is degenerate.
func (s SealantSpec) MetersPerCan() float64 {
	v := s.VolumePerMeterMl()
	if v <= 0 {
		return 0
	}
	return s.CanVolumeMl / v
}

// MaterialConfig holds all adjustable estimation parameters.
// MetersPerCan applies in single mode; Exterior/Interior apply in dual mode.
// A screw spacing of zero disables the fastener estimate.
type MaterialConfig struct {
	Mode               SealantMode `json:"mode" mapstructure:"mode"`
	WasteFactorPercent float64     `json:"waste_factor_percent" mapstructure:"waste_factor_percent"`
	MetersPerCan       float64     `json:"meters_per_can" mapstructure:"meters_per_can"`
	Exterior           SealantSpec `json:"exterior" mapstructure:"exterior"`
	Interior           SealantSpec `json:"interior" mapstructure:"interior"`
	ScrewSpacingCm     float64     `json:"screw_spacing_cm" mapstructure:"screw_spacing_cm"`
}

// WasteMultiplier returns the factor applied to raw lengths to cover
// application loss.
func (c MaterialConfig) WasteMultiplier() float64 {
	return 1 + c.WasteFactorPercent/100
}

// DefaultConfig returns a MaterialConfig with sensible defaults: a typical
// 6mm-bead can yield for single mode and common PVC-installation joint
// geometry for dual mode.
func DefaultConfig() MaterialConfig {
	return MaterialConfig{
		Mode:               ModeSingle,
		WasteFactorPercent: 10,
		MetersPerCan:       12,
		Exterior:           SealantSpec{JointWidthMm: 8, JointDepthMm: 6, CanVolumeMl: 300},
		Interior:           SealantSpec{JointWidthMm: 6, JointDepthMm: 4, CanVolumeMl: 300},
		ScrewSpacingCm:     40,
	}
}
