package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetallic_RoughnessClamp(t *testing.T) {
	tests := []struct {
		name              string
		inputRoughness    float64
		expectedRoughness float64
	}{
		{"Valid roughness 0.0", 0.0, 0.0},
		{"Valid roughness 0.5", 0.5, 0.5},
		{"Valid roughness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewColor(0.8, 0.8, 0.8, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetallic(albedo, tt.inputRoughness)
			if metal.Roughness != tt.expectedRoughness {
				t.Errorf("Expected roughness %f, got %f", tt.expectedRoughness, metal.Roughness)
			}
		})
	}
}

func TestMetallic_PerfectReflection(t *testing.T) {
	albedo := core.NewColor(0.9, 0.9, 0.9, 1)
	metal := NewMetallic(albedo, 0.0)
	sampler := core.NewSeededSampler(42)

	// Ray hitting surface at 45 degrees
	incoming := core.NewVec3(0, -1, -1).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), incoming, 0)
	hit := Intersection{
		Distance: 1,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Material: metal,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := incoming.Reflect(hit.Normal).Normalize()
	if !scatter.Scattered.Direction.Equals(expected) {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Scattered.Direction.Subtract(core.NewVec3(0, -1, 1).Normalize()).Length() > 1e-12 {
		t.Errorf("Unexpected mirror direction %v", scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetallic_FuzzyReflection(t *testing.T) {
	metal := NewMetallic(core.NewColor(0.8, 0.8, 0.8, 1), 0.5)
	sampler := core.NewSeededSampler(42)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: metal}

	distinct := map[core.Vec3]bool{}
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Head-on fuzzy reflection with roughness 0.5 cannot go below the surface (iteration %d)", i)
		}
		distinct[scatter.Scattered.Direction] = true
	}
	if len(distinct) < 2 {
		t.Error("Roughness should introduce variation in the reflected direction")
	}
}

func TestMetallic_AbsorbsReflectionIntoSurface(t *testing.T) {
	albedo := core.NewColor(0.8, 0.6, 0.2, 1)
	metal := NewMetallic(albedo, 0)

	// A ray travelling along the normal reflects back into the surface
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: metal}

	scatter, didScatter := metal.Scatter(rayIn, hit, core.NewSeededSampler(1))
	if didScatter {
		t.Errorf("Expected absorption, got scattered ray %+v", scatter.Scattered)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Absorbed scatter should still report the albedo, got %v", scatter.Attenuation)
	}
}
