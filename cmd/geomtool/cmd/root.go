package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command run when geomtool is invoked without a
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "geomtool",
	Short: "compute and validate 2D geometry",
	Long: `geomtool is the command-line companion to geom2d:
	- compute the convex hull of a point set,
	- triangulate a point set (Delaunay or constrained Delaunay),
	- validate contours for degeneracy and self-intersection,
	- read input from a YAML scenario file or an OBJ point-set file.`,
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
