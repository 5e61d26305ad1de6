package model

// MaterialProfile is a named, reusable MaterialConfig preset for a sealant
// product or installation style.
type MaterialProfile struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsBuiltIn   bool           `json:"is_built_in,omitempty"`
	Config      MaterialConfig `json:"config"`
}

// Built-in material profiles
var MaterialProfiles = []MaterialProfile{
	{
		Name:        "Single 12m",
		Description: "One sealant type, 12 m per can (typical 6mm bead), 10% waste",
		IsBuiltIn:   true,
		Config: MaterialConfig{
			Mode:               ModeSingle,
			WasteFactorPercent: 10,
			MetersPerCan:       12,
			ScrewSpacingCm:     40,
		},
	},
	{
		Name:        "Dual PVC",
		Description: "Separate exterior/interior sealant for PVC frames, 300ml cans",
		IsBuiltIn:   true,
		Config: MaterialConfig{
			Mode:               ModeDual,
			WasteFactorPercent: 10,
			Exterior:           SealantSpec{JointWidthMm: 8, JointDepthMm: 6, CanVolumeMl: 300},
			Interior:           SealantSpec{JointWidthMm: 6, JointDepthMm: 4, CanVolumeMl: 300},
			ScrewSpacingCm:     40,
		},
	},
	{
		Name:        "Dual Aluminium",
		Description: "Wider joints for aluminium frames, 600ml sausage cans",
		IsBuiltIn:   true,
		Config: MaterialConfig{
			Mode:               ModeDual,
			WasteFactorPercent: 15,
			Exterior:           SealantSpec{JointWidthMm: 10, JointDepthMm: 8, CanVolumeMl: 600},
			Interior:           SealantSpec{JointWidthMm: 8, JointDepthMm: 6, CanVolumeMl: 600},
			ScrewSpacingCm:     30,
		},
	},
	{
		Name:        "Generic",
		Description: "Fallback profile with the application defaults",
		IsBuiltIn:   true,
		Config: MaterialConfig{
			Mode:               ModeSingle,
			WasteFactorPercent: 10,
			MetersPerCan:       12,
			Exterior:           SealantSpec{JointWidthMm: 8, JointDepthMm: 6, CanVolumeMl: 300},
			Interior:           SealantSpec{JointWidthMm: 6, JointDepthMm: 4, CanVolumeMl: 300},
			ScrewSpacingCm:     40,
		},
	},
}

// GetMaterialProfile returns a profile by name, or the Generic profile if
// not found.
func GetMaterialProfile(name string) MaterialProfile {
	for _, p := range MaterialProfiles {
		if p.Name == name {
			return p
		}
	}
	return MaterialProfiles[len(MaterialProfiles)-1] // Return Generic (last one)
}

// MaterialProfileNames returns a list of all built-in profile names.
func MaterialProfileNames() []string {
	var names []string
	for _, p := range MaterialProfiles {
		names = append(names, p.Name)
	}
	return names
}
