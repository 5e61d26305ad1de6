package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Salmanisco/silicon-calc/internal/config"
	"github.com/Salmanisco/silicon-calc/internal/export"
	"github.com/Salmanisco/silicon-calc/internal/importer"
	"github.com/Salmanisco/silicon-calc/internal/model"
	"github.com/Salmanisco/silicon-calc/internal/project"
)

var (
	estProjectName  string
	estProfileName  string
	estMode         string
	estWaste        float64
	estMetersPerCan float64
	estExtWidth     float64
	estExtDepth     float64
	estExtVolume    float64
	estIntWidth     float64
	estIntDepth     float64
	estIntVolume    float64
	estScrewSpacing float64
	estPDFPath      string
	estSavePath     string
	estDXFUnits     float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <windows.csv|.xlsx|.dxf|.json>",
	Short: "Estimate sealant, screws, and gasket for a window list",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estProjectName, "project", "", "Project name shown on the report")
	f.StringVar(&estProfileName, "profile", "", "Material profile to start from")
	f.StringVar(&estMode, "mode", "", "Sealant mode: single or dual")
	f.Float64Var(&estWaste, "waste", 0, "Waste factor percentage")
	f.Float64Var(&estMetersPerCan, "meters-per-can", 0, "Silicone yield in meters per can (single mode)")
	f.Float64Var(&estExtWidth, "ext-joint-width", 0, "Exterior joint width in mm (dual mode)")
	f.Float64Var(&estExtDepth, "ext-joint-depth", 0, "Exterior joint depth in mm (dual mode)")
	f.Float64Var(&estExtVolume, "ext-can-volume", 0, "Exterior can volume in ml (dual mode)")
	f.Float64Var(&estIntWidth, "int-joint-width", 0, "Interior joint width in mm (dual mode)")
	f.Float64Var(&estIntDepth, "int-joint-depth", 0, "Interior joint depth in mm (dual mode)")
	f.Float64Var(&estIntVolume, "int-can-volume", 0, "Interior can volume in ml (dual mode)")
	f.Float64Var(&estScrewSpacing, "screw-spacing", 0, "Screw spacing in cm; 0 disables the screw estimate")
	f.StringVar(&estPDFPath, "pdf", "", "Write a printable PDF report to this path")
	f.StringVar(&estSavePath, "save", "", "Save the project (entries and settings) to this JSON path")
	f.Float64Var(&estDXFUnits, "dxf-units", 1000, "DXF drawing units per meter (1000 for mm drawings)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initiate logger: %w", err)
	}
	defer logger.Sync()

	cfg := model.DefaultConfig()
	projectName := "Untitled"
	reportPath := estPDFPath

	if configFile != "" {
		conf, err := config.LoadConfiguration(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", configFile, err)
		}
		cfg = conf.Material
		if conf.ProjectName != "" {
			projectName = conf.ProjectName
		}
		if estProfileName == "" {
			estProfileName = conf.Profile
		}
		if reportPath == "" {
			reportPath = conf.Report.OutputPath
		}
	}

	var profile *model.MaterialProfile
	if estProfileName != "" {
		p, ok, err := project.FindProfile(project.DefaultProfilesPath(), estProfileName)
		if err != nil {
			return fmt.Errorf("failed to load material profiles: %w", err)
		}
		if !ok {
			return fmt.Errorf("unknown material profile %q", estProfileName)
		}
		profile = &p
	}

	entries, inputName, inputCfg, err := loadEntries(logger, args[0])
	if err != nil {
		return err
	}
	if inputName != "" {
		projectName = inputName
	}

	cfg, profileUsed := chooseConfig(cfg, inputCfg, profile, cmd.Flags().Changed("profile"))
	if profileUsed {
		logger.Info("using material profile", zap.String("profile", profile.Name))
	}

	applyFlagOverrides(cmd, &cfg)
	if estProjectName != "" {
		projectName = estProjectName
	}

	est, err := model.EstimateMaterials(entries, cfg)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	export.WriteSummary(os.Stdout, projectName, est)

	if reportPath != "" {
		if err := export.WritePDF(reportPath, projectName, est, time.Now()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", zap.String("path", reportPath))
	}

	if estSavePath != "" {
		p := model.Project{Name: projectName, Entries: entries, Config: cfg}
		if err := project.SaveProject(estSavePath, p); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		logger.Info("project saved", zap.String("path", estSavePath))
	}

	return nil
}

// chooseConfig resolves the material configuration for a run. A saved
// project's embedded settings replace the config-file values, and a profile
// named on the command line wins over both; a profile that only comes from
// the config file does not override a project's own settings. The second
// return value reports whether the profile was applied.
func chooseConfig(base model.MaterialConfig, projectCfg *model.MaterialConfig, profile *model.MaterialProfile, profileExplicit bool) (model.MaterialConfig, bool) {
	cfg := base
	if projectCfg != nil {
		cfg = *projectCfg
	}
	if profile != nil && (profileExplicit || projectCfg == nil) {
		return profile.Config, true
	}
	return cfg, false
}

// loadEntries reads window entries from the input file, dispatching on the
// extension. Saved project files additionally carry a name and a material
// configuration.
func loadEntries(logger *zap.Logger, path string) ([]model.WindowEntry, string, *model.MaterialConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		p, err := project.LoadProject(path)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to load project file: %w", err)
		}
		return p.Entries, p.Name, &p.Config, nil
	}

	var result importer.ImportResult
	switch ext {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path, estDXFUnits)
	default:
		return nil, "", nil, fmt.Errorf("unsupported input format %q", ext)
	}

	for _, w := range result.Warnings {
		logger.Warn("import warning", zap.String("detail", w))
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			logger.Error("import error", zap.String("detail", e))
		}
		return nil, "", nil, fmt.Errorf("input file %s has %d invalid rows", path, len(result.Errors))
	}

	return result.Entries, "", nil, nil
}

// applyFlagOverrides copies explicitly-set flags over the configuration, so
// a flag always wins over the config file and the profile.
func applyFlagOverrides(cmd *cobra.Command, cfg *model.MaterialConfig) {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = model.SealantMode(estMode)
	}
	if flags.Changed("waste") {
		cfg.WasteFactorPercent = estWaste
	}
	if flags.Changed("meters-per-can") {
		cfg.MetersPerCan = estMetersPerCan
	}
	if flags.Changed("ext-joint-width") {
		cfg.Exterior.JointWidthMm = estExtWidth
	}
	if flags.Changed("ext-joint-depth") {
		cfg.Exterior.JointDepthMm = estExtDepth
	}
	if flags.Changed("ext-can-volume") {
		cfg.Exterior.CanVolumeMl = estExtVolume
	}
	if flags.Changed("int-joint-width") {
		cfg.Interior.JointWidthMm = estIntWidth
	}
	if flags.Changed("int-joint-depth") {
		cfg.Interior.JointDepthMm = estIntDepth
	}
	if flags.Changed("int-can-volume") {
		cfg.Interior.CanVolumeMl = estIntVolume
	}
	if flags.Changed("screw-spacing") {
		cfg.ScrewSpacingCm = estScrewSpacing
	}
}
