package renderer

import (
	"errors"
	"fmt"
)

// DebugMode replaces the physical shading with a diagnostic color at the first hit
type DebugMode int

const (
	DebugNone    DebugMode = iota
	DebugNormals           // 0.5*(n+1) of the surface normal
	DebugDiffuse           // albedo scaled by |cos| toward the viewer, no further bounce
)

var debugModeNames = map[DebugMode]string{
	DebugNone:    "none",
	DebugNormals: "normals",
	DebugDiffuse: "diffuse",
}

func (m DebugMode) String() string {
	if name, ok := debugModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("DebugMode(%d)", int(m))
}

// ParseDebugMode converts a name into a DebugMode. The empty string means DebugNone.
func ParseDebugMode(name string) (DebugMode, error) {
	if name == "" {
		return DebugNone, nil
	}
	for mode, modeName := range debugModeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return DebugNone, fmt.Errorf("unknown debug mode %q", name)
}

// ErrInvalidParameters is returned by Validate for out-of-range settings
var ErrInvalidParameters = errors.New("invalid render parameters")

// Parameters control a single render
type Parameters struct {
	ImageWidth       int       // Width in pixels, > 0
	ImageHeight      int       // Height in pixels, > 0
	AntialiasSamples int       // Samples per pixel, >= 1
	BounceLimit      int       // Maximum path depth, >= 0
	DebugMode        DebugMode // Diagnostic shading, DebugNone for normal renders
	TileSize         int       // Edge length of a work tile in pixels
	NumWorkers       int       // Parallel workers (0 = use CPU count)
	Seed             uint64    // Base seed; tile i samples from Seed+i
}

// DefaultParameters returns sensible default values
func DefaultParameters() Parameters {
	return Parameters{
		ImageWidth:       400,
		ImageHeight:      225, // 16:9 aspect ratio
		AntialiasSamples: 50,
		BounceLimit:      25,
		DebugMode:        DebugNone,
		TileSize:         64,
		NumWorkers:       0,
		Seed:             42,
	}
}

// AspectRatio returns width / height
func (p Parameters) AspectRatio() float64 {
	return float64(p.ImageWidth) / float64(p.ImageHeight)
}

// Validate checks that every parameter is in range
func (p Parameters) Validate() error {
	switch {
	case p.ImageWidth <= 0:
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidParameters, p.ImageWidth)
	case p.ImageHeight <= 0:
		return fmt.Errorf("%w: image height must be positive, got %d", ErrInvalidParameters, p.ImageHeight)
	case p.AntialiasSamples < 1:
		return fmt.Errorf("%w: antialias samples must be at least 1, got %d", ErrInvalidParameters, p.AntialiasSamples)
	case p.BounceLimit < 0:
		return fmt.Errorf("%w: bounce limit must not be negative, got %d", ErrInvalidParameters, p.BounceLimit)
	case p.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidParameters, p.TileSize)
	case p.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidParameters, p.NumWorkers)
	}
	if _, ok := debugModeNames[p.DebugMode]; !ok {
		return fmt.Errorf("%w: unknown debug mode %d", ErrInvalidParameters, int(p.DebugMode))
	}
	return nil
}
