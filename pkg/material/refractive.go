package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewRefractive creates a dielectric material such as glass or water
func NewRefractive(albedo core.Color, refractiveIndex float64) *Material {
	return &Material{Kind: Refractive, Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// scatterRefractive reflects or refracts with probability given by Schlick's
// approximation. Rays leaving the medium use the cosine of the transmitted ray,
// not the index-scaled incident cosine n·|d·n| of the usual shortcut.
func (m *Material) scatterRefractive(rayIn core.Ray, hit Intersection, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction
	cosIncident := direction.Dot(hit.Normal)

	// Determine if we're entering or exiting the material
	var outwardNormal core.Vec3
	var eta float64
	if cosIncident <= 0 {
		outwardNormal = hit.Normal
		eta = 1 / m.RefractiveIndex
	} else {
		outwardNormal = hit.Normal.Negate()
		eta = m.RefractiveIndex
	}

	scattered := direction.Reflect(hit.Normal)
	if refracted, ok := direction.Refract(outwardNormal, eta); ok {
		// Schlick's cosine is measured on the outer side of the interface:
		// the incident angle when entering, the transmitted angle when exiting
		cosine := math.Abs(cosIncident)
		if cosIncident > 0 {
			cosine = math.Abs(refracted.Dot(outwardNormal))
		}

		if sampler.Get1D() > Reflectance(cosine, m.RefractiveIndex) {
			scattered = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scattered.Normalize(), rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
