// Package geom provides the 2D vector math used throughout the simulation.
// All coordinates are pixel-space; no unit conversion anywhere.
package geom

import "math"

// #region vec2

// Vec2 is a 2D point or direction in pixel space.
type Vec2 struct {
	X float64
	Y float64
}

// #endregion vec2

// #region arithmetic

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mag returns the Euclidean length of v.
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// #endregion arithmetic

// #region normalize

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// #endregion normalize

// #region distance

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Mag()
}

// #endregion distance

// #region clamp

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampRect restricts p to the axis-aligned rectangle
// [lo, hi] on both axes.
func (v Vec2) ClampRect(lo, hi Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// #endregion clamp
