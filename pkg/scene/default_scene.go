package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates the classic three spheres on a large yellow ground sphere,
// viewed along -Z with +Y up
func NewDefaultScene() *Scene {
	lookAt := core.NewVec3(0, 0, -1)
	camera := geometry.DefaultCameraConfig()
	camera.Up = core.NewVec3(0, 1, 0)
	camera.LookAt = &lookAt

	red := material.NewDiffuse(core.NewColor(0.8, 0.3, 0.3, 1.0))
	silver := material.NewMetallic(core.NewColor(0.8, 0.8, 0.8, 1.0), 0.0)
	ground := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.0, 1.0))

	return New(camera).Add(
		NewObject(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), red),
		NewObject(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), silver),
		NewObject(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), silver),
		NewObject(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), ground),
	)
}
