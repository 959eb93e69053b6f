// Package core provides fundamental types and utilities for the calma games.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a 2D point or displacement in continuous coordinates
// (percent of the play area or viewport points, depending on context).
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Lerp interpolates from v to o by t (0 = v, 1 = o).
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Box is an axis-aligned bounding box in continuous coordinates.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// BoxAt returns a box of the given size whose top-left corner is p.
func BoxAt(p Vec, w, h float64) Box {
	return Box{X: p.X, Y: p.Y, W: w, H: h}
}

// Min returns the top-left corner.
func (b Box) Min() Vec { return Vec{b.X, b.Y} }

// Max returns the bottom-right corner.
func (b Box) Max() Vec { return Vec{b.X + b.W, b.Y + b.H} }

// Center returns the center point of the box.
func (b Box) Center() Vec { return Vec{b.X + b.W/2, b.Y + b.H/2} }

// Area returns W*H, or 0 for degenerate boxes.
func (b Box) Area() float64 {
	if b.W <= 0 || b.H <= 0 {
		return 0
	}
	return b.W * b.H
}

// Contains reports whether p lies inside the box (right/bottom edges exclusive).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// Intersects reports whether two boxes overlap with non-zero area.
func (b Box) Intersects(o Box) bool {
	return b.Intersection(o) > 0
}

// Intersection returns the overlapping area of two boxes.
func (b Box) Intersection(o Box) float64 {
	w := math.Min(b.X+b.W, o.X+o.W) - math.Max(b.X, o.X)
	h := math.Min(b.Y+b.H, o.Y+o.H) - math.Max(b.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// OverlapRatio returns the fraction of b's area covered by o.
// A zero-area b yields 0.
func (b Box) OverlapRatio(o Box) float64 {
	area := b.Area()
	if area == 0 {
		return 0
	}
	return b.Intersection(o) / area
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	return Box{X: b.X + d.X, Y: b.Y + d.Y, W: b.W, H: b.H}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
