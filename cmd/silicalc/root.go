package main

import "github.com/spf13/cobra"

var (
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "silicalc",
	Short: "Material estimator for window installation projects",
	Long: `silicalc estimates the silicone sealant, screws, and rubber gasket
needed for a window installation project from a list of window dimensions
and quantities. Window lists can come from CSV or Excel files, from DXF
elevation drawings, or from saved project files.`,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(profilesCmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
}
