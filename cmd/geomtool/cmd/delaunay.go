package cmd

import (
	"fmt"

	"github.com/arl/geom2d/triangulate"
	"github.com/spf13/cobra"
)

var delaunayScenario, delaunayOBJ string

var delaunayCmd = &cobra.Command{
	Use:   "delaunay",
	Short: "compute the Delaunay triangulation of a point set",
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := loadPoints(delaunayScenario, delaunayOBJ)
		if err != nil {
			return err
		}
		tris, err := triangulate.Delaunay(points)
		if err != nil {
			return err
		}
		printTriangles(tris)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(delaunayCmd)
	delaunayCmd.Flags().StringVar(&delaunayScenario, "scenario", "", "YAML scenario file")
	delaunayCmd.Flags().StringVar(&delaunayOBJ, "obj", "", "OBJ vertex file")
}

func printTriangles(tris []triangulate.Triangle) {
	for _, tr := range tris {
		fmt.Printf("%g %g  %g %g  %g %g\n", tr.A.X, tr.A.Y, tr.B.X, tr.B.Y, tr.C.X, tr.C.Y)
	}
}
