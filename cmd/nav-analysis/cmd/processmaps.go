package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arl/meetpoint/internal/hashsweep"
)

var processMapsCmd = &cobra.Command{
	Use:   "process-maps",
	Short: "report which maps changed since the last run",
	Long: `Computes a content hash over each map's .tri and nav-mesh JSON inputs,
compares it against the hash recorded on a previous run, and prints
the JSON-encoded list of maps whose inputs changed. Maps reported here
also have their hash refreshed, so a repeat run with no input changes
reports an empty list.`,
	RunE: doProcessMaps,
}

func init() {
	RootCmd.AddCommand(processMapsCmd)
}

func doProcessMaps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maps, err := discoverMaps(cfg.NavDir)
	if err != nil {
		return err
	}

	var inputs []hashsweep.MapInputs
	for _, m := range maps {
		inputs = append(inputs, hashsweep.MapInputs{
			Map: m,
			Files: []string{
				filepath.Join(cfg.TriDir, m+".tri"),
				filepath.Join(cfg.NavDir, m+".json"),
			},
		})
	}

	changed, err := hashsweep.Sweep(cfg.HashesDir, inputs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(changed)
}

// discoverMaps lists every map name with a nav mesh JSON file under
// navDir, derived from the file's base name.
func discoverMaps(navDir string) ([]string, error) {
	entries, err := os.ReadDir(navDir)
	if err != nil {
		return nil, fmt.Errorf("process-maps: list %s: %w", navDir, err)
	}

	var maps []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		maps = append(maps, strings.TrimSuffix(e.Name(), ".json"))
	}
	return maps, nil
}
