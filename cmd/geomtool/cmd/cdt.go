package cmd

import (
	"fmt"
	"os"

	"github.com/arl/geom2d/internal/buildlog"
	"github.com/arl/geom2d/triangulate"
	"github.com/spf13/cobra"
)

var cdtScenario string
var cdtVerbose bool

var cdtCmd = &cobra.Command{
	Use:   "cdt",
	Short: "compute a constrained Delaunay triangulation",
	Long: `Compute the constrained Delaunay triangulation of the point set
and segment constraints described in a YAML scenario file, keeping only
the triangles inside the region the constraints bound.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cdtScenario == "" {
			return fmt.Errorf("--scenario is required")
		}
		s, err := loadScenario(cdtScenario)
		if err != nil {
			return err
		}
		points, err := s.GeomPoints()
		if err != nil {
			return err
		}
		constraints, err := s.GeomConstraints(points)
		if err != nil {
			return err
		}

		var log *buildlog.Log
		if cdtVerbose {
			log = buildlog.New()
		}
		tris, err := triangulate.ConstrainedDelaunayWithLog(points, constraints, log)
		if log != nil {
			log.Dump(os.Stderr, "cdt log:")
		}
		if err != nil {
			return err
		}
		printTriangles(tris)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cdtCmd)
	cdtCmd.Flags().StringVar(&cdtScenario, "scenario", "", "YAML scenario file (required)")
	cdtCmd.Flags().BoolVar(&cdtVerbose, "verbose", false, "print per-constraint flip diagnostics to stderr")
}
