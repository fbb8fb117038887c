package cmd

import (
	"fmt"

	"github.com/arl/geom2d/geom2d"
	"github.com/spf13/cobra"
)

var hullScenario, hullOBJ string

var hullCmd = &cobra.Command{
	Use:   "hull",
	Short: "compute the convex hull of a point set",
	Long: `Compute the convex hull of a point set read from a YAML scenario
file (--scenario) or an OBJ vertex file (--obj), and print the hull
vertices in CCW order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := loadPoints(hullScenario, hullOBJ)
		if err != nil {
			return err
		}
		hull := geom2d.ConvexHull(points)
		for _, p := range hull {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hullCmd)
	hullCmd.Flags().StringVar(&hullScenario, "scenario", "", "YAML scenario file")
	hullCmd.Flags().StringVar(&hullOBJ, "obj", "", "OBJ vertex file")
}

// loadPoints reads a point set from whichever of scenarioPath/objPath is
// set. Exactly one must be non-empty.
func loadPoints(scenarioPath, objPath string) ([]geom2d.Point, error) {
	switch {
	case scenarioPath != "" && objPath != "":
		return nil, fmt.Errorf("specify only one of --scenario or --obj")
	case scenarioPath != "":
		s, err := loadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		return s.GeomPoints()
	case objPath != "":
		return loadOBJPoints(objPath)
	default:
		return nil, fmt.Errorf("one of --scenario or --obj is required")
	}
}
