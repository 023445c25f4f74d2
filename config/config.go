// Package config loads YAML configuration files for the diagnostic
// CLI. The codec itself takes no configuration; only cmd/frametool
// depends on this package.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadYAMLFileAndUnmarshal reads file and decodes it as YAML into v.
func ReadYAMLFileAndUnmarshal(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading yaml config file: %w", err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error decoding config from yaml: %w", err)
	}
	return nil
}
