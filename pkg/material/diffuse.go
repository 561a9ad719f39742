package material

import "github.com/df07/go-pathtracer/pkg/core"

// maxDiffuseResamples bounds the retries for a degenerate scatter direction
const maxDiffuseResamples = 8

// NewDiffuse creates a Lambertian material
func NewDiffuse(albedo core.Color) *Material {
	return &Material{Kind: Diffuse, Albedo: albedo}
}

// scatterDiffuse offsets the normal by a random point in the unit sphere, which
// approximates a cosine-weighted distribution. Directions that collapse to zero
// or do not leave the surface are resampled; after maxDiffuseResamples attempts
// the normal itself is used.
func (m *Material) scatterDiffuse(rayIn core.Ray, hit Intersection, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal
	for i := 0; i < maxDiffuseResamples; i++ {
		candidate := hit.Normal.Add(core.SamplePointInUnitSphere(sampler.Get3D()))
		if candidate.LengthSquared() < 1e-12 {
			continue
		}
		candidate = candidate.Normalize()
		if candidate.Dot(hit.Normal) > 0 {
			direction = candidate
			break
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}
