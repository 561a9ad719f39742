package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// The example scenes use a Z-up world with the camera looking along +Y.

func lookAtCamera(origin, target core.Vec3, fov float64) geometry.CameraConfig {
	camera := geometry.DefaultCameraConfig()
	camera.Origin = origin
	camera.LookAt = &target
	camera.FieldOfView = fov
	return camera
}

// NewSpheresScene shows every material: two glass spheres (one hollow),
// a diffuse sphere and a polished and a rough metal sphere
func NewSpheresScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -0.6, 0), core.NewVec3(0, 1, -0.2), 55)
	clear := core.NewColor(1, 1, 1, 1)
	steel := core.NewColor(0.8, 0.8, 0.8, 1)

	return New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0.3, 0.5, -0.3), 0.2), material.NewRefractive(clear, 1.008)),
		NewObject(geometry.NewSphere(core.NewVec3(-0.3, 0.5, -0.3), -0.2), material.NewRefractive(clear, 1.3)),
		NewObject(geometry.NewSphere(core.NewVec3(0, 1.4, 0), 0.5), material.NewDiffuse(core.NewColor(0.8, 0.3, 0.3, 1))),
		NewObject(geometry.NewSphere(core.NewVec3(0.8, 1, -0.1), 0.4), material.NewMetallic(steel, 0)),
		NewObject(geometry.NewSphere(core.NewVec3(-0.8, 1, -0.1), 0.4), material.NewMetallic(steel, 0.8)),
		NewObject(geometry.NewSphere(core.NewVec3(0, 1, -100.5), 100), material.NewDiffuse(core.NewColor(0.8, 0.8, 0, 1))),
	)
}

// NewMetallicScene lines up nine metal spheres with roughness rising from 0 to 1
func NewMetallicScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -5.5, 0), core.NewVec3(0, 0, 0), 20)
	s := New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 1, -600.5), 600), material.NewDiffuse(core.NewColor(0.8, 0.8, 0, 1))),
	)

	for x := 0; x <= 8; x++ {
		center := core.NewVec3(float64(x)-4, 0, -0.002*math.Abs(float64(x-4)))
		metal := material.NewMetallic(core.NewColor(0.9, 0.9, 0.9, 1), float64(x)/8)
		s.Add(NewObject(geometry.NewSphere(center, 0.5), metal))
	}
	return s
}

// NewFocusScene surrounds a mirror sphere with colored spheres and uses a
// wide aperture focused just in front of the mirror
func NewFocusScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0.8, 1.2, 1.0), core.NewVec3(0, 0, 0), 55)
	camera.ApertureRadius = 0.1
	camera.FocusDistance = camera.FocusOnLookAt(-0.25)

	diffuse := func(r, g, b float64) *material.Material {
		return material.NewDiffuse(core.NewColor(r, g, b, 1))
	}
	sphere := func(x, y, z float64) geometry.Shape {
		return geometry.NewSphere(core.NewVec3(x, y, z), 0.5)
	}

	return New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 0, -100.5), 100), diffuse(0.8, 0.8, 0)),
		NewObject(sphere(1.3, 0, 0), diffuse(0.8, 0.8, 0.3)),
		NewObject(sphere(-1.3, 0, 0), diffuse(0.3, 0.6, 0.3)),
		NewObject(sphere(0, 1.3, 0), diffuse(0.6, 0.2, 0.2)),
		NewObject(sphere(0, -1.3, 0), diffuse(0.3, 0.3, 0.6)),
		NewObject(sphere(1, 1, 0), diffuse(1, 0.3, 0.3)),
		NewObject(sphere(-1, -1, 0), diffuse(0.3, 1, 0.3)),
		NewObject(sphere(-1, 1, 0), diffuse(1, 0.6, 0.3)),
		NewObject(sphere(1, -1, 0), diffuse(0.3, 0.3, 1)),
		NewObject(sphere(0, 0, 0), material.NewMetallic(core.NewColor(0.8, 0.8, 0.8, 1), 0)),
	)
}

// NewVelocityScene moves a row of metal spheres sideways, each faster than the last,
// while the shutter is open from t=0 to t=1
func NewVelocityScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -5.5, 0), core.NewVec3(0, 0, 0), 20)
	camera.ShutterOpen = 0
	camera.ShutterClose = 1

	s := New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 1, -600.5), 600), material.NewDiffuse(core.NewColor(0.8, 0.8, 0, 1))),
	)

	for x := 0; x <= 5; x++ {
		fx := float64(x)
		center := core.NewVec3(1.5*fx-4, 0, 0)
		metal := material.NewMetallic(core.NewColor(0.9, 0.9, 0.9, 1), 0.5)
		s.Add(NewMovingObject(geometry.NewSphere(center, 0.5), metal, core.NewVec3(0.1*fx, 0, 0)))
	}
	return s
}

// NewStudioScene is a single grey sphere on a grey ground, used with the debug modes
func NewStudioScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -0.6, 0), core.NewVec3(0, 1, -0.2), 55)
	grey := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8, 1))

	return New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 0.5, -0.1), 0.4), grey),
		NewObject(geometry.NewSphere(core.NewVec3(0, 1, -100.5), 100), grey),
	)
}

// NewBenchmarkScene fills the view with a staggered grid of 143 rough metal spheres
func NewBenchmarkScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -5, 0.8), core.NewVec3(0, -3, 0), 45)
	s := New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 1, -600.5), 600), material.NewDiffuse(core.NewColor(0.8, 0.8, 0, 1))),
	)

	// Spheres share a single material
	metal := material.NewMetallic(core.NewColor(0.8, 0.8, 0.8, 1), 0.6)
	for x := 0; x <= 10; x++ {
		for y := 0; y <= 12; y++ {
			offset := 0.5 * float64(y%2)
			center := core.NewVec3(float64(x)-5+offset, float64(y)-6, 0)
			s.Add(NewObject(geometry.NewSphere(center, 0.5), metal))
		}
	}
	return s
}

// NewGroundPlaneScene places the three materials on an infinite plane
func NewGroundPlaneScene() *Scene {
	camera := lookAtCamera(core.NewVec3(0, -3, 1), core.NewVec3(0, 0, 0.4), 40)

	return New(camera).Add(
		NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5, 1))),
		NewObject(geometry.NewSphere(core.NewVec3(-1.1, 0, 0.5), 0.5), material.NewDiffuse(core.NewColor(0.1, 0.2, 0.5, 1))),
		NewObject(geometry.NewSphere(core.NewVec3(0, 0, 0.5), 0.5), material.NewRefractive(core.NewColor(1, 1, 1, 1), 1.5)),
		NewObject(geometry.NewSphere(core.NewVec3(1.1, 0, 0.5), 0.5), material.NewMetallic(core.NewColor(0.8, 0.6, 0.2, 1), 0.3)),
	)
}
