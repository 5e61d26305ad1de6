package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/Salmanisco/silicon-calc/internal/model"
)

// DefaultProfilesPath returns the default file path for custom material
// profiles, located at ~/.silicalc/profiles.json.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom material profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.MaterialProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom material profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.MaterialProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.MaterialProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.MaterialProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// AllProfiles returns the built-in profiles followed by the custom profiles
// from the given path. A missing custom-profile file is not an error.
func AllProfiles(path string) ([]model.MaterialProfile, error) {
	custom, err := LoadCustomProfiles(path)
	if err != nil {
		return nil, err
	}
	all := make([]model.MaterialProfile, 0, len(model.MaterialProfiles)+len(custom))
	all = append(all, model.MaterialProfiles...)
	all = append(all, custom...)
	return all, nil
}

// FindProfile looks a profile up by name among built-ins and the custom
// profiles at the given path. Returns false when no profile matches.
func FindProfile(path, name string) (model.MaterialProfile, bool, error) {
	all, err := AllProfiles(path)
	if err != nil {
		return model.MaterialProfile{}, false, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, true, nil
		}
	}
	return model.MaterialProfile{}, false, nil
}
