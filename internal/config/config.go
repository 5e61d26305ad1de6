// Package config loads the YAML-formatted application configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// Configuration holds all configuration for silicalc. The material section
// maps directly onto the estimation parameters; the report section controls
// the PDF output.
type Configuration struct {
	ProjectName string               `mapstructure:"project_name"`
	Profile     string               `mapstructure:"profile"`
	Material    model.MaterialConfig `mapstructure:"material"`
	Report      ReportOptions        `mapstructure:"report"`
}

// ReportOptions controls the generated report document.
type ReportOptions struct {
	OutputPath string `mapstructure:"output_path"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Values left out of the file fall back to the
// application defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	defaults := model.DefaultConfig()
	viper.SetDefault("material.mode", string(defaults.Mode))
	viper.SetDefault("material.waste_factor_percent", defaults.WasteFactorPercent)
	viper.SetDefault("material.meters_per_can", defaults.MetersPerCan)
	viper.SetDefault("material.screw_spacing_cm", defaults.ScrewSpacingCm)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var configuration Configuration
	if err := viper.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	switch configuration.Material.Mode {
	case model.ModeSingle, model.ModeDual:
	default:
		return nil, fmt.Errorf("invalid material.mode %q: must be %q or %q",
			configuration.Material.Mode, model.ModeSingle, model.ModeDual)
	}

	return &configuration, nil
}
