package cmd

import (
	"fmt"
	"os"

	"github.com/arl/meetpoint/internal/config"
)

// loadConfig loads cfgFile if set, else falls back to built-in
// defaults, mirroring the teacher CLI's unmarshalYAMLFile pattern.
func loadConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// fileExists returns nil if path exists, or a descriptive error if it
// doesn't or can't be stat'ed.
func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file %q", path)
		}
		return err
	}
	return nil
}
