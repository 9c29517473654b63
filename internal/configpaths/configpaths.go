// Package configpaths locates knobpad configuration files.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "knobpad"

// DefaultConfigDir returns the per-user configuration directory, or
// /etc/knobpad when running as root.
func DefaultConfigDir() (string, error) {
	if os.Geteuid() == 0 {
		return filepath.Join(string(os.PathSeparator), "etc", appDir), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir), nil
}

// ConfigCandidatePaths returns the config files to try, split by format and
// in priority order. An explicit userCfg is the only candidate of its format.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userCfg != "" {
		switch strings.ToLower(filepath.Ext(userCfg)) {
		case ".json":
			return []string{userCfg}, nil, nil
		case ".toml":
			return nil, nil, []string{userCfg}
		default:
			return nil, []string{userCfg}, nil
		}
	}

	var dirs []string
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".")
	for _, d := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(d, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(d, "config.yaml"), filepath.Join(d, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(d, "config.toml"))
	}
	return jsonPaths, yamlPaths, tomlPaths
}
