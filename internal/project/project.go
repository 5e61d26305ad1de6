// Package project persists window projects and material profiles as JSON.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.silicalc/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".silicalc")
}

// SaveProject persists a project to the given path as indented JSON.
// It creates any missing parent directories automatically.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
// If the file does not exist, it returns a fresh project with no error.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewProject(), nil
		}
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, err
	}
	// Ensure Entries is never nil
	if p.Entries == nil {
		p.Entries = []model.WindowEntry{}
	}
	return p, nil
}
