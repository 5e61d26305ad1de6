package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Salmanisco/silicon-calc/internal/project"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in and custom material profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := project.AllProfiles(project.DefaultProfilesPath())
		if err != nil {
			return fmt.Errorf("failed to load material profiles: %w", err)
		}

		for _, p := range profiles {
			kind := "custom"
			if p.IsBuiltIn {
				kind = "built-in"
			}
			fmt.Printf("%-16s [%s, %-8s] %s\n", p.Name, p.Config.Mode, kind, p.Description)
		}
		return nil
	},
}
