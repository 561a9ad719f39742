package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Epsilon is the minimum hit distance, keeping scattered rays off their own surface
const Epsilon = 0.001

var (
	ErrMissingScene  = errors.New("renderer: no scene")
	ErrMissingCamera = errors.New("renderer: scene has no camera")
)

// Raytracer renders a scene. The scene and compiled camera are read-only once
// the raytracer is built and are shared by every worker.
type Raytracer struct {
	scene  *scene.Scene
	camera *geometry.Camera
	params Parameters
	logger core.Logger
}

// NewRaytracer validates the configuration and compiles the camera.
// All configuration errors are reported here, before any rendering work.
func NewRaytracer(s *scene.Scene, params Parameters, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, ErrMissingScene
	}
	if s.Camera == nil {
		return nil, ErrMissingCamera
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	camera, err := geometry.NewCamera(*s.Camera, params.AspectRatio())
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:  s,
		camera: camera,
		params: params,
		logger: logger,
	}, nil
}

// Parameters returns the render parameters
func (rt *Raytracer) Parameters() Parameters {
	return rt.params
}

// Camera returns the compiled camera
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Trace returns the color carried back along ray, which has already bounced depth times
func (rt *Raytracer) Trace(ray core.Ray, depth int, sampler core.Sampler) core.Color {
	var rays int
	return rt.trace(ray, depth, sampler, &rays)
}

// trace counts every ray it queries against the scene in rays
func (rt *Raytracer) trace(ray core.Ray, depth int, sampler core.Sampler, rays *int) core.Color {
	attenuation := core.White

	for ; depth < rt.params.BounceLimit; depth++ {
		*rays++
		hit, isHit := rt.scene.FindNearest(ray, Epsilon, math.Inf(1))
		if !isHit {
			return attenuation.MultiplyVec(rt.scene.Background.Sample(ray.Direction, rt.camera.WorldUp()))
		}

		switch rt.params.DebugMode {
		case DebugNormals:
			n := hit.Normal
			return attenuation.MultiplyVec(core.NewColor(0.5*(n.X+1), 0.5*(n.Y+1), 0.5*(n.Z+1), 1))
		case DebugDiffuse:
			cosine := math.Abs(hit.Normal.Dot(ray.Direction))
			albedo := hit.Material.Albedo
			return attenuation.MultiplyVec(core.NewColor(albedo.X*cosine, albedo.Y*cosine, albedo.Z*cosine, albedo.W))
		}

		scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
		if !scattered {
			return core.Black
		}
		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Black
}
