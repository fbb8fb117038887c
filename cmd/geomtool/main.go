// Command geomtool is the CLI companion to geom2d: compute convex hulls,
// Delaunay and constrained Delaunay triangulations, and validate contours
// described in scenario files.
package main

import "github.com/arl/geom2d/cmd/geomtool/cmd"

func main() {
	cmd.Execute()
}
