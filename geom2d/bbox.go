package geom2d

import (
	"fmt"
	"math"
)

// BoundingBox is an axis-aligned bounding box over float64 coordinates,
// adapted from github.com/aurelien-rainone/gobj's AABB (3D, Min/Max per axis) down to
// 2D: same "grow by extend, start at +inf/-inf" construction idiom, same
// field naming convention.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// emptyBoundingBox returns a bounding box with no extent, ready to be
// grown by Extend, mirroring gobj.NewAABB's +inf/-inf seeding.
func emptyBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// newBoundingBox returns the bounding box of the given points.
func newBoundingBox(pts ...Point) BoundingBox {
	bb := emptyBoundingBox()
	for _, p := range pts {
		bb.extendPoint(p)
	}
	return bb
}

func (bb *BoundingBox) extendPoint(p Point) {
	if p.X < bb.MinX {
		bb.MinX = p.X
	}
	if p.X > bb.MaxX {
		bb.MaxX = p.X
	}
	if p.Y < bb.MinY {
		bb.MinY = p.Y
	}
	if p.Y > bb.MaxY {
		bb.MaxY = p.Y
	}
}

// Extend grows bb to also contain other, mirroring gobj.AABB.extend.
func (bb *BoundingBox) Extend(other BoundingBox) {
	if other.MinX < bb.MinX {
		bb.MinX = other.MinX
	}
	if other.MaxX > bb.MaxX {
		bb.MaxX = other.MaxX
	}
	if other.MinY < bb.MinY {
		bb.MinY = other.MinY
	}
	if other.MaxY > bb.MaxY {
		bb.MaxY = other.MaxY
	}
}

// Contains reports whether p lies within bb, inclusive of the boundary.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.MinX && p.X <= bb.MaxX && p.Y >= bb.MinY && p.Y <= bb.MaxY
}

// Overlaps reports whether bb and o share any point.
func (bb BoundingBox) Overlaps(o BoundingBox) bool {
	return bb.MinX <= o.MaxX && o.MinX <= bb.MaxX && bb.MinY <= o.MaxY && o.MinY <= bb.MaxY
}

// Width returns the horizontal extent of bb.
func (bb BoundingBox) Width() float64 { return bb.MaxX - bb.MinX }

// Height returns the vertical extent of bb.
func (bb BoundingBox) Height() float64 { return bb.MaxY - bb.MinY }

func (bb BoundingBox) String() string {
	return fmt.Sprintf("x[%f, %f], y[%f, %f]", bb.MinX, bb.MaxX, bb.MinY, bb.MaxY)
}
