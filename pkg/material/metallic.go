package material

import "github.com/df07/go-pathtracer/pkg/core"

// NewMetallic creates a metallic material; roughness is clamped to [0, 1]
func NewMetallic(albedo core.Color, roughness float64) *Material {
	return &Material{Kind: Metallic, Albedo: albedo, Roughness: core.Clamp(roughness, 0, 1)}
}

func (m *Material) scatterMetallic(rayIn core.Ray, hit Intersection, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Roughness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Roughness)
		reflected = reflected.Add(perturbation)
	}

	result := ScatterResult{Attenuation: m.Albedo}

	// Reflections that point into the surface are absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return result, false
	}

	result.Scattered = core.NewRay(hit.Point, reflected.Normalize(), rayIn.Time)
	return result, true
}
