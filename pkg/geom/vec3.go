package geom

import (
	"fmt"
	"math"
)

// Component extremes for Vec3. MaxComponent/MinComponent are the corner
// values of the Empty box sentinel.
const (
	MaxComponent int32 = math.MaxInt32
	MinComponent int32 = math.MinInt32
)

// Vec3 is a three-component integer vector on the int32 lattice.
//
// All arithmetic follows Go's two's-complement semantics: Add and Sub wrap
// at the int32 extremes, Div truncates toward zero. Min and Max are order
// statistics and can never overflow, which is what makes the Empty box
// sentinel safe to fold real data into.
type Vec3 struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// Add returns the component-wise sum v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Min returns the component-wise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Div returns v with every component divided by s, truncating toward zero.
func (v Vec3) Div(s int32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// String renders the vector as "X:1 Y:2 Z:3".
func (v Vec3) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", v.X, v.Y, v.Z)
}
