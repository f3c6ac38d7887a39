package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/phonescan/internal/model"
)

// DefaultConfigFile is the default directory file name.
const DefaultConfigFile = ".phonescan.yml"

// ErrConfigNotFound is returned when the directory file does not exist.
var ErrConfigNotFound = errors.New("directory file not found")

// DirectoryFile holds numbering-table overrides loaded from YAML.
// Any section left empty keeps the corresponding built-in table.
//
// Regions is a sequence rather than a mapping because region resolution
// is first-match in declaration order and YAML mappings do not guarantee
// order across implementations.
type DirectoryFile struct {
	// Providers maps three-digit local prefixes to carrier names.
	Providers map[string]string `yaml:"providers"`

	// Regions lists region rules in match order.
	Regions []RegionRuleEntry `yaml:"regions"`

	// Profiles maps carrier names to directory profiles.
	Profiles map[string]model.ProviderProfile `yaml:"profiles"`
}

// RegionRuleEntry is one region rule in the directory file.
type RegionRuleEntry struct {
	// Prefix is matched against the start of the local prefix.
	Prefix string `yaml:"prefix"`
	// Region is the geographic label for the prefix.
	Region string `yaml:"region"`
}

// LoadDirectoryFile loads numbering-table overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the file path was explicitly specified by the user.
func LoadDirectoryFile(path string) (*DirectoryFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var df DirectoryFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, err
	}

	return &df, nil
}

// FindConfigFile searches for the directory file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .phonescan.yml in the current directory
// 3. Look for .phonescan.yml in the user's home directory
// 4. Look for .phonescan.yml in the XDG config directory
//
// Returns the path to the directory file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
