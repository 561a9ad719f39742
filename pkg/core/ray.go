package core

import "fmt"

// Ray represents a half-line with a unit direction and the shutter time it was sampled at
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray. The direction must already be normalized; anything
// else is a programming error and panics.
func NewRay(origin, direction Vec3, time float64) Ray {
	if !direction.IsUnit() {
		panic(fmt.Sprintf("core: ray direction %v is not unit length", direction))
	}
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3 {
	if t < 0 {
		panic(fmt.Sprintf("core: negative ray distance %v", t))
	}
	if !r.Direction.IsUnit() {
		panic(fmt.Sprintf("core: ray direction %v is not unit length", r.Direction))
	}
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsValid reports whether the ray direction satisfies the unit-length invariant
func (r Ray) IsValid() bool {
	return r.Direction.IsUnit()
}
