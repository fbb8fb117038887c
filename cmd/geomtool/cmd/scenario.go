package cmd

import (
	"fmt"

	"github.com/arl/geom2d/geom2d"
)

// Scenario is geomtool's YAML input format, generalizing the teacher's
// recast.yml build-settings file (cmd/recast/cmd/config.go) from "mesh
// build parameters" to "a point set plus the constraints and operation to
// run against it".
type Scenario struct {
	// Points lists the input point set as [x, y] pairs.
	Points [][2]float64 `yaml:"points"`
	// Constraints lists segment constraints as [i, j] indices into Points,
	// used by the cdt operation.
	Constraints [][2]int `yaml:"constraints,omitempty"`
	// Operation names an operation ("hull", "delaunay", "cdt", or
	// "validate"). It is saved and loaded with the scenario; no subcommand
	// reads it.
	Operation string `yaml:"operation"`
}

// defaultScenario is written by `geomtool scenario` to give users a
// runnable starting point: a square with one interior point, triangulated
// with Delaunay.
func defaultScenario() *Scenario {
	return &Scenario{
		Points: [][2]float64{
			{0, 0}, {6, 0}, {6, 6}, {0, 6}, {3, 3},
		},
		Operation: "delaunay",
	}
}

// loadScenario reads and validates a Scenario from a YAML file.
func loadScenario(path string) (*Scenario, error) {
	var s Scenario
	if err := unmarshalYAMLFile(path, &s); err != nil {
		return nil, err
	}
	if len(s.Points) < 3 {
		return nil, fmt.Errorf("scenario %q: need at least 3 points, got %d", path, len(s.Points))
	}
	return &s, nil
}

// GeomPoints converts Points into validated geom2d.Point values.
func (s *Scenario) GeomPoints() ([]geom2d.Point, error) {
	out := make([]geom2d.Point, 0, len(s.Points))
	for i, xy := range s.Points {
		p, err := geom2d.NewPoint(xy[0], xy[1])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// GeomConstraints resolves Constraints into geom2d.Segment values against
// the already-converted point slice.
func (s *Scenario) GeomConstraints(points []geom2d.Point) ([]geom2d.Segment, error) {
	out := make([]geom2d.Segment, 0, len(s.Constraints))
	for _, c := range s.Constraints {
		if c[0] < 0 || c[0] >= len(points) || c[1] < 0 || c[1] >= len(points) {
			return nil, fmt.Errorf("constraint %v: index out of range for %d points", c, len(points))
		}
		seg, err := geom2d.NewSegment(points[c[0]], points[c[1]])
		if err != nil {
			return nil, fmt.Errorf("constraint %v: %w", c, err)
		}
		out = append(out, seg)
	}
	return out, nil
}
