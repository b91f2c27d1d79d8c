// Package geometry implements the corner arithmetic behind the
// adjacency-implies-relationship heuristic.
package geometry

import (
	"math"

	"github.com/agenthands/sketchont/internal/core/model"
)

// DefaultTolerance is the distance, on each axis, under which two corners
// are considered to touch.
const DefaultTolerance = 5.0

type Point struct {
	X, Y float64
}

type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Corners returns the four corners of g indexed by Corner.
func Corners(g model.Geometry) [4]Point {
	return [4]Point{
		TopLeft:     {g.X, g.Y},
		TopRight:    {g.X + g.Width, g.Y},
		BottomLeft:  {g.X, g.Y + g.Height},
		BottomRight: {g.X + g.Width, g.Y + g.Height},
	}
}

func CornerOf(g model.Geometry, c Corner) Point {
	return Corners(g)[c]
}

// Near reports whether a and b are closer than tolerance on both axes.
func Near(a, b Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

// Convention pairs the corner of the child shape with the corner of the
// parent shape that must touch for the child to be read as attached.
type Convention struct {
	Child  Corner
	Parent Corner
}

// Attached reports whether child sits against parent under the convention.
func (c Convention) Attached(child, parent model.Geometry, tolerance float64) bool {
	return Near(CornerOf(child, c.Child), CornerOf(parent, c.Parent), tolerance)
}
