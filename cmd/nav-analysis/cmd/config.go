package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/arl/meetpoint/internal/atomicfile"
	"github.com/arl/meetpoint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a pipeline config file prefilled with default values",
	Long: `Create a pipeline config file in YAML format, prefilled with the
built-in default directory layout and granularity.

If FILE is not provided, 'nav-analysis.yml' is used.`,
	RunE: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) error {
	path := "nav-analysis.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := atomicfile.Write(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fmt.Printf("pipeline config written to %q\n", path)
	return nil
}
