package engine

import "math"

// Vec is a point or displacement in board units
// One board unit is one terminal column; a row spans two units
type Vec struct {
	X, Y float64
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Size is the board extent in board units
type Size struct {
	W, H float64
}

// Center returns the geometric center of the board
func (s Size) Center() Vec {
	return Vec{X: s.W / 2, Y: s.H / 2}
}
