// Package config loads the YAML pipeline settings shared by every
// nav-analysis subcommand: directory layout and default granularity,
// following the teacher CLI's recast.yml build-settings idiom.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultGranularity is the grid side length used by the regularizer
// when --granularity is not given on the command line.
const DefaultGranularity = 200

// Config is the on-disk pipeline configuration: where each input and
// output artifact kind lives, relative to the working directory.
type Config struct {
	Granularity int `yaml:"granularity"`

	NavDir        string `yaml:"nav_dir"`
	TriDir        string `yaml:"tri_dir"`
	SpawnsDir     string `yaml:"spawns_dir"`
	MapsDir       string `yaml:"maps_dir"`
	ResultsDir    string `yaml:"results_dir"`
	CollisionsDir string `yaml:"collisions_dir"`
	HashesDir     string `yaml:"hashes_dir"`
	CachesDir     string `yaml:"caches_dir"`
}

// Default returns the directory layout described in spec.md §6:
// nav/, tri/, spawns/, maps/ as inputs, results/, data/collisions/, and
// hashes/ as outputs, plus data/caches/ for the persisted visibility and
// walkability caches of spec.md §4.E (implementation-specific: the spec
// leaves cache file placement unspecified).
func Default() Config {
	return Config{
		Granularity:   DefaultGranularity,
		NavDir:        "nav",
		TriDir:        "tri",
		SpawnsDir:     "spawns",
		MapsDir:       "maps",
		ResultsDir:    "results",
		CollisionsDir: "data/collisions",
		HashesDir:     "hashes",
		CachesDir:     "data/caches",
	}
}

// Load reads a YAML config file at path, starting from Default() so
// that a config file only needs to override the fields it cares about.
func Load(path string) (Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
