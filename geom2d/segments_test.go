package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentContains(t *testing.T) {
	s := MustSegment(MustPoint(0, 0), MustPoint(4, 0))
	assert.True(t, SegmentContains(s, MustPoint(2, 0)))
	assert.False(t, SegmentContains(s, MustPoint(5, 0)))
	assert.False(t, SegmentContains(s, MustPoint(2, 1)))
}

func TestSegmentsRelationshipCross(t *testing.T) {
	s1 := MustSegment(MustPoint(0, 0), MustPoint(4, 4))
	s2 := MustSegment(MustPoint(0, 4), MustPoint(4, 0))
	assert.Equal(t, Cross, SegmentsRelationship(s1, s2))
}

func TestSegmentsRelationshipDisjoint(t *testing.T) {
	s1 := MustSegment(MustPoint(0, 0), MustPoint(1, 0))
	s2 := MustSegment(MustPoint(0, 5), MustPoint(1, 5))
	assert.Equal(t, Disjoint, SegmentsRelationship(s1, s2))
}

func TestSegmentsRelationshipTouch(t *testing.T) {
	s1 := MustSegment(MustPoint(0, 0), MustPoint(1, 0))
	s2 := MustSegment(MustPoint(1, 0), MustPoint(1, 1))
	assert.Equal(t, Touch, SegmentsRelationship(s1, s2))
}

func TestSegmentsRelationshipOverlap(t *testing.T) {
	s1 := MustSegment(MustPoint(0, 0), MustPoint(2, 0))
	s2 := MustSegment(MustPoint(1, 0), MustPoint(3, 0))
	assert.Equal(t, Overlap, SegmentsRelationship(s1, s2))
}
