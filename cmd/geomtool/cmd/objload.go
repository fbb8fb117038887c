package cmd

import (
	"github.com/arl/geom2d/geom2d"
	"github.com/aurelien-rainone/gobj"
)

// loadOBJPoints reads an OBJ file's vertex list as a 2D point set,
// dropping the Z coordinate — geometry fixtures for this tool are
// naturally expressed as a flat vertex list, the same shape gobj already
// parses for 3D meshes (adapted from gobj.Load/Decode).
func loadOBJPoints(path string) ([]geom2d.Point, error) {
	of, err := gobj.Load(path)
	if err != nil {
		return nil, err
	}
	verts := of.Verts()
	points := make([]geom2d.Point, 0, len(verts))
	for _, v := range verts {
		p, err := geom2d.NewPoint(v.X(), v.Y())
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
