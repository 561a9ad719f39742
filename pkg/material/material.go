package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind identifies one of the supported surface models
type Kind int

const (
	Diffuse Kind = iota
	Metallic
	Refractive
)

var kindNames = map[Kind]string{
	Diffuse:    "diffuse",
	Metallic:   "metallic",
	Refractive: "refractive",
}

// String returns the lowercase name used in setup files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a setup-file name into a Kind
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown material kind %q", name)
}

// Material describes how a surface scatters light. The set of models is closed;
// Kind selects which of the parameters are meaningful.
type Material struct {
	Kind            Kind
	Albedo          core.Color // Attenuation applied on every bounce
	Roughness       float64    // Metallic: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64    // Refractive: index of refraction (e.g. 1.5 for glass)
}

// Intersection is the result of a successful ray/object test
type Intersection struct {
	Distance float64   // Distance along the ray, > 0
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal as reported by the primitive
	Material *Material // Material of the hit object
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// Scatter computes the outgoing ray for rayIn hitting the surface at hit.
// It returns false when the ray is absorbed; the attenuation is still reported.
func (m *Material) Scatter(rayIn core.Ray, hit Intersection, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case Diffuse:
		return m.scatterDiffuse(rayIn, hit, sampler)
	case Metallic:
		return m.scatterMetallic(rayIn, hit, sampler)
	case Refractive:
		return m.scatterRefractive(rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
	}
}
