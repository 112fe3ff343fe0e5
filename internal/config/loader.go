package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load returns the difficulty profile set.
// Search order: customPath -> ~/.gridtap/profiles.yaml -> ./profiles.yaml -> embedded default.
// File entries overlay the built-in profiles, so a partial file only overrides
// the profiles it names.
func Load(customPath string) (Profiles, error) {
	base := DefaultProfiles()

	// Try custom path first; a broken explicit path is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read profiles %s: %w", customPath, err)
		}
		return overlay(base, data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("profiles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if merged, err := overlay(base, data, userCfgPath); err == nil {
				return merged, nil
			}
		}
	}

	// Try local profiles file
	if data, err := os.ReadFile("profiles.yaml"); err == nil {
		if merged, err := overlay(base, data, "profiles.yaml"); err == nil {
			return merged, nil
		}
	}

	// Use embedded default YAML
	var cfg Profiles
	if err := yaml.Unmarshal(defaultProfilesYAML, &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	nameProfiles(&cfg)
	return cfg, nil
}

// overlay merges file-defined profiles over the built-in set.
func overlay(base Profiles, data []byte, source string) (Profiles, error) {
	var cfg Profiles
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse profiles %s: %w", source, err)
	}
	nameProfiles(&cfg)

	merged := Profiles{Profiles: make(map[string]Profile, len(base.Profiles))}
	for name, p := range base.Profiles {
		merged.Profiles[name] = p
	}
	for name, p := range cfg.Profiles {
		merged.Profiles[name] = p
	}
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("invalid profiles in %s: %w", source, err)
	}
	return merged, nil
}

// nameProfiles copies map keys into the Name field, which is not serialized.
func nameProfiles(ps *Profiles) {
	for name, p := range ps.Profiles {
		p.Name = name
		ps.Profiles[name] = p
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridtap", filename)
}
