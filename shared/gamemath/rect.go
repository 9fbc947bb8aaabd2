package gamemath

import (
	"fmt"
	"math"
)

// Vec is a 2D vector in pixels (or pixels per second for velocities).
type Vec struct {
	X, Y float64
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an integer, axis-aligned rectangle. Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the geometric centre of the rectangle.
func (r Rect) Center() Vec {
	return Vec{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) + float64(r.Height)/2,
	}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() &&
		o.Left() < r.Right() &&
		r.Top() < o.Bottom() &&
		o.Top() < r.Bottom()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// IntersectionDepth returns the signed amount by which a must move on each
// axis to stop overlapping b. The zero vector means the rectangles do not
// overlap; touching edges do not count as overlap.
func IntersectionDepth(a, b Rect) Vec {
	halfWidthA := float64(a.Width) / 2
	halfHeightA := float64(a.Height) / 2
	halfWidthB := float64(b.Width) / 2
	halfHeightB := float64(b.Height) / 2

	centerA := a.Center()
	centerB := b.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if math.Abs(distanceX) >= minDistanceX || math.Abs(distanceY) >= minDistanceY {
		return Vec{}
	}

	depthX := -minDistanceX - distanceX
	if distanceX > 0 {
		depthX = minDistanceX - distanceX
	}
	depthY := -minDistanceY - distanceY
	if distanceY > 0 {
		depthY = minDistanceY - distanceY
	}
	return Vec{X: depthX, Y: depthY}
}
