package vmath

import "math"

// Vec2 is a float64 2D vector in lattice units (y grows downward)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) MagSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Mag() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Angle returns the direction of v in [0, Tau), measured from +x toward +y
func (v Vec2) Angle() float64 {
	return NormalizeAngle(math.Atan2(v.Y, v.X))
}

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// FromAngle returns the unit vector for an angle measured from +x toward +y
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

// ScreenHeading returns the unit vector for a compass-style heading in degrees
// 0° points right, 90° points up on screen
func ScreenHeading(deg float64) Vec2 {
	a := Radians(deg)
	return Vec2{math.Cos(a), -math.Sin(a)}
}

// ReflectAxisX returns the vector reflected off a vertical wall
func (v Vec2) ReflectAxisX() Vec2 { return Vec2{-v.X, v.Y} }

// ReflectAxisY returns the vector reflected off a horizontal wall
func (v Vec2) ReflectAxisY() Vec2 { return Vec2{v.X, -v.Y} }
