package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// scenarioCmd represents the scenario command, mirroring cmd/recast/cmd's
// config.go: write a prefilled YAML file the user can then edit and feed
// to hull/delaunay/cdt/validate via --scenario.
var scenarioCmd = &cobra.Command{
	Use:   "scenario [FILE]",
	Short: "write a starter scenario file",
	Long: `Write a scenario file in YAML format, prefilled with a small
example point set.

If FILE is not provided, 'scenario.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "scenario.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if err := fileExists(path); err == nil {
			fmt.Printf("%q already exists, not overwriting\n", path)
			return
		}
		check(marshalYAMLFile(path, defaultScenario()))
		fmt.Printf("scenario written to %q\n", path)
	},
}

func init() {
	RootCmd.AddCommand(scenarioCmd)
}
