// Package cmd implements the nav-analysis command-line surface: the
// process-maps content-hash sweep and the nav-analysis pipeline
// subcommand, wired to the library packages under internal/.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nav-analysis",
	Short: "build and analyze nav-mesh visibility spread for CS2 maps",
	Long: `nav-analysis builds all-pairs visibility and walkability caches over
a map's navigation mesh and collision geometry, then generates the
merged CT/T spread of newly reached areas and visibility connections.`,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "pipeline config file (YAML, defaults used if not given)")
}

// Execute adds all child commands to RootCmd and runs it. Any error
// reaching here (including a recovered invariant-assertion panic) is
// reported as a diagnostic line, per the pipeline's fatal-error policy;
// the process exits non-zero.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "nav-analysis: fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nav-analysis: %v\n", err)
		os.Exit(1)
	}
}
