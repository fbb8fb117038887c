package triangulate

import "github.com/arl/geom2d/geom2d"

// newError builds a geom2d.Error tagged with op, reusing geom2d's error
// taxonomy (spec.md §7) rather than inventing a parallel one for
// triangulation failures.
func newError(op string, kind geom2d.Kind) error {
	return &geom2d.Error{Op: op, Kind: kind}
}

func newErrorf(op string, kind geom2d.Kind, err error) error {
	return &geom2d.Error{Op: op, Kind: kind, Err: err}
}
