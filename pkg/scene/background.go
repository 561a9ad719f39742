package scene

import "github.com/df07/go-pathtracer/pkg/core"

// BackgroundKind selects how rays that escape the scene are colored
type BackgroundKind int

const (
	BackgroundGradient BackgroundKind = iota
	BackgroundConstant
)

// Background is the environment seen by rays that hit nothing
type Background struct {
	Kind   BackgroundKind
	Top    core.Color // Color looking straight up (or the constant color)
	Bottom core.Color // Color looking straight down
}

// DefaultBackground returns a blue sky fading to white at the horizon
func DefaultBackground() Background {
	return Background{
		Kind:   BackgroundGradient,
		Top:    core.NewColor(0.5, 0.7, 1.0, 1.0),
		Bottom: core.NewColor(1.0, 1.0, 1.0, 1.0),
	}
}

// ConstantBackground returns a background of a single color
func ConstantBackground(color core.Color) Background {
	return Background{Kind: BackgroundConstant, Top: color, Bottom: color}
}

// Sample returns the background color for a unit direction, with the
// gradient running along the up axis
func (b Background) Sample(direction, up core.Vec3) core.Color {
	if b.Kind == BackgroundConstant {
		return b.Top
	}

	// Map the up component from [-1,1] to [0,1]
	t := 0.5 * (direction.Dot(up) + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
