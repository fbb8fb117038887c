package cmd

import (
	"fmt"

	"github.com/arl/geom2d/geom2d"
	"github.com/spf13/cobra"
)

var validateScenario, validateOBJ string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "validate a contour for self-intersection and degeneracy",
	Long: `Treat the point set read from --scenario or --obj as a closed
contour, in the order given, and report whether it is a valid simple
contour (spec.md §3/§5): at least 3 vertices, no collinear consecutive
triple, and no self-intersection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := loadPoints(validateScenario, validateOBJ)
		if err != nil {
			return err
		}
		contour, err := geom2d.NewContour(points...)
		if err != nil {
			fmt.Println("invalid:", err)
			return nil
		}
		if err := contour.Validate(); err != nil {
			fmt.Println("invalid:", err)
			return nil
		}
		fmt.Println("valid")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateScenario, "scenario", "", "YAML scenario file")
	validateCmd.Flags().StringVar(&validateOBJ, "obj", "", "OBJ vertex file")
}
