// Package introspect reads meson introspection data from a configured build tree
package introspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// BuildOptionsFile is the introspection record written by the configuration
// step, relative to the build directory.
const BuildOptionsFile = "meson-info/intro-buildoptions.json"

// BuildOption is a single option record from the introspection data.
// Records carry more fields than these; only name and value matter here.
type BuildOption struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Backend returns the backend option value from the introspection data of
// buildDir. The caller is responsible for having validated buildDir.
func Backend(buildDir string) (string, error) {
	path := filepath.Join(buildDir, filepath.FromSlash(BuildOptionsFile))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: `%s` is missing, directory is not configured yet?",
				ErrConfigurationMissing, filepath.Base(path))
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var options []BuildOption
	if err := json.Unmarshal(data, &options); err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrConfigurationCorrupt, filepath.Base(path), err)
	}

	for _, opt := range options {
		if opt.Name == "backend" {
			value, ok := opt.Value.(string)
			if !ok {
				return "", fmt.Errorf("%w: `backend` option is not a string", ErrConfigurationCorrupt)
			}
			return value, nil
		}
	}

	return "", fmt.Errorf("%w: `%s` is missing the `backend` option",
		ErrConfigurationMissing, filepath.Base(path))
}
