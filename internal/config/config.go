// internal/config/config.go
//
// Loads the build configuration from a JSON or YAML document and runs it
// through the schema validator. The returned Config is complete (defaults
// applied) and treated as immutable for the rest of the run.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the validated build configuration.
type Config struct {
	// Volumes are docker volume specs mounted into every build container,
	// passed verbatim (not templated), in the order given.
	Volumes []string

	// DockerArgs is an extra argument string appended to docker run,
	// template-expanded per architecture.
	DockerArgs string

	// Arches lists the target architectures, built front to back.
	Arches []string

	// Image is the base image reference, template-expanded per architecture.
	Image string

	// ContainerName is the name format for the per-arch containers.
	ContainerName string

	// Build is the path to the user's build script, template-expanded
	// per architecture. The file must exist when its arch comes up.
	Build string

	// RemoveContainers toggles docker run --rm.
	RemoveContainers bool
}

// Load reads and validates a config file. The extension picks the decoder:
// .yaml/.yml use YAML, everything else is treated as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the config file: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse the config file as yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse the json, is the config file a valid json file? (%v)", err)
		}
	}

	return validate(raw)
}
