package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Object pairs a shape with its material. A non-zero velocity moves the shape
// linearly with ray time: its position at time t is base + velocity*t.
type Object struct {
	Shape    geometry.Shape
	Material *material.Material
	Velocity core.Vec3
}

// NewObject creates a static object
func NewObject(shape geometry.Shape, mat *material.Material) Object {
	return Object{Shape: shape, Material: mat}
}

// NewMovingObject creates an object that moves with the given velocity
func NewMovingObject(shape geometry.Shape, mat *material.Material, velocity core.Vec3) Object {
	return Object{Shape: shape, Material: mat, Velocity: velocity}
}

// Intersect tests the ray against the object at the ray's time
func (o *Object) Intersect(ray core.Ray, tMin, tMax float64) (material.Intersection, bool) {
	// Moving shapes are tested in their rest frame
	offset := o.Velocity.Multiply(ray.Time)
	local := ray
	local.Origin = ray.Origin.Subtract(offset)

	hit, ok := o.Shape.Hit(local, tMin, tMax)
	if !ok {
		return material.Intersection{}, false
	}

	return material.Intersection{
		Distance: hit.T,
		Point:    hit.Point.Add(offset),
		Normal:   hit.Normal,
		Material: o.Material,
	}, true
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera     *geometry.CameraConfig
	Objects    []Object
	Background Background
}

// New creates an empty scene viewed through camera
func New(camera geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:     &camera,
		Background: DefaultBackground(),
	}
}

// Add appends objects to the scene and returns it for chaining
func (s *Scene) Add(objects ...Object) *Scene {
	s.Objects = append(s.Objects, objects...)
	return s
}

// FindNearest returns the closest intersection in [tMin, tMax]. When two
// objects are hit at exactly the same distance the one added first wins.
func (s *Scene) FindNearest(ray core.Ray, tMin, tMax float64) (material.Intersection, bool) {
	_, hit, ok := s.FindNearestObject(ray, tMin, tMax)
	return hit, ok
}

// FindNearestObject is FindNearest that also reports which object was hit
func (s *Scene) FindNearestObject(ray core.Ray, tMin, tMax float64) (*Object, material.Intersection, bool) {
	var closest material.Intersection
	var closestObject *Object
	closestSoFar := tMax

	for i := range s.Objects {
		if hit, isHit := s.Objects[i].Intersect(ray, tMin, closestSoFar); isHit && (closestObject == nil || hit.Distance < closest.Distance) {
			closestSoFar = hit.Distance
			closest = hit
			closestObject = &s.Objects[i]
		}
	}

	return closestObject, closest, closestObject != nil
}
