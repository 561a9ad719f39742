package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal, not flipped towards the ray
	T      float64   // Distance along the ray
}

// Shape interface for objects that can be hit by rays. Hits behind the
// ray origin are never reported, so a negative tMin behaves like 0.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
