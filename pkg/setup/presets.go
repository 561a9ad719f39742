package setup

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrUnknownPreset is returned by Preset for names that are not built in
var ErrUnknownPreset = errors.New("setup: unknown preset")

type preset struct {
	description string
	build       func() *Setup
}

// exampleParameters are the settings shared by the example renders
func exampleParameters(width, height, bounces int) renderer.Parameters {
	params := renderer.DefaultParameters()
	params.ImageWidth = width
	params.ImageHeight = height
	params.AntialiasSamples = 16
	params.BounceLimit = bounces
	return params
}

func withDebug(params renderer.Parameters, mode renderer.DebugMode) renderer.Parameters {
	params.DebugMode = mode
	return params
}

var presets = map[string]preset{
	"default": {"Three spheres on a yellow ground", func() *Setup {
		return &Setup{Parameters: renderer.DefaultParameters(), Scene: scene.NewDefaultScene()}
	}},
	"spheres": {"Glass, diffuse and metal spheres", func() *Setup {
		return &Setup{Parameters: exampleParameters(1024, 576, 16), Scene: scene.NewSpheresScene()}
	}},
	"metallic": {"Metal spheres of increasing roughness", func() *Setup {
		return &Setup{Parameters: exampleParameters(1024, 200, 16), Scene: scene.NewMetallicScene()}
	}},
	"focus": {"Depth of field around a mirror sphere", func() *Setup {
		return &Setup{Parameters: exampleParameters(1024, 576, 16), Scene: scene.NewFocusScene()}
	}},
	"velocity": {"Motion blur on moving spheres", func() *Setup {
		return &Setup{Parameters: exampleParameters(1024, 200, 16), Scene: scene.NewVelocityScene()}
	}},
	"diffuse": {"Diffuse-only debug shading", func() *Setup {
		return &Setup{Parameters: withDebug(exampleParameters(1024, 576, 32), renderer.DebugDiffuse), Scene: scene.NewStudioScene()}
	}},
	"normals": {"Surface normal debug shading", func() *Setup {
		return &Setup{Parameters: withDebug(exampleParameters(1024, 576, 1), renderer.DebugNormals), Scene: scene.NewStudioScene()}
	}},
	"benchmark": {"Grid of 143 rough metal spheres", func() *Setup {
		return &Setup{Parameters: exampleParameters(1024, 576, 16), Scene: scene.NewBenchmarkScene()}
	}},
	"plane": {"Three materials on an infinite ground plane", func() *Setup {
		return &Setup{Parameters: exampleParameters(800, 450, 16), Scene: scene.NewGroundPlaneScene()}
	}},
}

// Preset returns a fresh copy of a built-in setup
func Preset(name string) (*Setup, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.build(), nil
}

// PresetNames returns the built-in setup names in sorted order
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
