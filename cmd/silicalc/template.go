package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Salmanisco/silicon-calc/internal/export"
)

var templateCmd = &cobra.Command{
	Use:   "template <out.csv|out.xlsx>",
	Short: "Write an example window list showing the expected input shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			if err := export.WriteTemplateCSV(path); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
		case ".xlsx":
			if err := export.WriteTemplateXLSX(path); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
		default:
			return fmt.Errorf("template format must be .csv or .xlsx")
		}
		fmt.Printf("Template written to %s\n", path)
		return nil
	},
}
