package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot be compiled
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig is the raw, serializable camera description
type CameraConfig struct {
	Origin         core.Vec3  // Eye position
	Up             core.Vec3  // World up direction
	LookAt         *core.Vec3 // Optional target; nil looks along +Y
	FieldOfView    float64    // Vertical field of view in degrees
	FocusDistance  float64    // Distance to the plane in perfect focus
	ApertureRadius float64    // Lens radius, 0 for a pinhole camera
	ShutterOpen    float64    // Time the shutter opens
	ShutterClose   float64    // Time the shutter closes
}

// DefaultCameraConfig returns a pinhole camera at the origin looking along +Y with +Z up
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		Up:             core.NewVec3(0, 0, 1),
		FieldOfView:    90,
		FocusDistance:  1,
		ApertureRadius: 0,
	}
}

// FocusOnLookAt returns the distance from the origin to the look-at target plus offset.
// Without a target it returns the configured focus distance.
func (c CameraConfig) FocusOnLookAt(offset float64) float64 {
	if c.LookAt == nil {
		return c.FocusDistance
	}
	return c.LookAt.Subtract(c.Origin).Length() + offset
}

// forward returns the unnormalized viewing direction
func (c CameraConfig) forward() core.Vec3 {
	if c.LookAt == nil {
		return core.NewVec3(0, 1, 0)
	}
	return c.LookAt.Subtract(c.Origin)
}

// Validate checks the configuration without compiling it
func (c CameraConfig) Validate() error {
	switch {
	case c.FieldOfView <= 0 || c.FieldOfView >= 180:
		return fmt.Errorf("%w: field of view %v must be in (0, 180)", ErrInvalidCamera, c.FieldOfView)
	case c.FocusDistance <= 0:
		return fmt.Errorf("%w: focus distance %v must be positive", ErrInvalidCamera, c.FocusDistance)
	case c.ApertureRadius < 0:
		return fmt.Errorf("%w: aperture radius %v must not be negative", ErrInvalidCamera, c.ApertureRadius)
	case c.ShutterClose < c.ShutterOpen:
		return fmt.Errorf("%w: shutter closes (%v) before it opens (%v)", ErrInvalidCamera, c.ShutterClose, c.ShutterOpen)
	case c.Up.IsZero():
		return fmt.Errorf("%w: up vector is zero", ErrInvalidCamera)
	case c.forward().IsZero():
		return fmt.Errorf("%w: look-at target equals the origin", ErrInvalidCamera)
	case c.forward().Normalize().Cross(c.Up.Normalize()).LengthSquared() < 1e-12:
		return fmt.Errorf("%w: up vector is parallel to the viewing direction", ErrInvalidCamera)
	}
	return nil
}

// Camera is a compiled camera that generates world-space rays
type Camera struct {
	origin          core.Vec3
	apertureRadius  float64
	shutterOpen     float64
	shutterDuration float64

	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3

	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	worldUp core.Vec3
}

// NewCamera compiles config for the given image aspect ratio (width / height)
func NewCamera(config CameraConfig, aspectRatio float64) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if aspectRatio <= 0 || math.IsInf(aspectRatio, 0) || math.IsNaN(aspectRatio) {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidCamera, aspectRatio)
	}

	halfHeight := math.Tan(config.FieldOfView * math.Pi / 180 / 2)
	halfWidth := halfHeight * aspectRatio

	worldUp := config.Up.Normalize()
	forward := config.forward().Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	focus := config.FocusDistance
	horizontal := right.Multiply(2 * halfWidth * focus)
	vertical := up.Multiply(2 * halfHeight * focus)
	lowerLeftCorner := config.Origin.
		Add(forward.Multiply(focus)).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:          config.Origin,
		apertureRadius:  config.ApertureRadius,
		shutterOpen:     config.ShutterOpen,
		shutterDuration: config.ShutterClose - config.ShutterOpen,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		forward:         forward,
		right:           right,
		up:              up,
		worldUp:         worldUp,
	}, nil
}

// GetRay generates a ray through the image plane at (u, v) where 0 <= u,v <= 1
// and (0, 0) is the lower left corner. Lens and shutter samples are drawn only
// when the camera has an aperture or an open shutter interval.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.apertureRadius > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.apertureRadius)
		origin = origin.Add(c.right.Multiply(lens.X)).Add(c.up.Multiply(lens.Y))
	}

	time := c.shutterOpen
	if c.shutterDuration > 0 {
		time += c.shutterDuration * sampler.Get1D()
	}

	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(u)).Add(c.vertical.Multiply(v))
	return core.NewRay(origin, target.Subtract(origin).Normalize(), time)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// Right returns the unit right direction of the image plane
func (c *Camera) Right() core.Vec3 {
	return c.right
}

// Up returns the re-orthogonalized unit up direction of the image plane
func (c *Camera) Up() core.Vec3 {
	return c.up
}

// WorldUp returns the normalized configured up vector
func (c *Camera) WorldUp() core.Vec3 {
	return c.worldUp
}
