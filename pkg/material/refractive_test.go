package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

func TestRefractive_IndexOnePassesThrough(t *testing.T) {
	lens := NewRefractive(core.NewColor(1, 1, 1, 1), 1.0)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)
	sampler := core.NewSequenceSampler(0.5)

	direction := core.NewVec3(0.1, 0.05, -1).Normalize()
	ray := core.NewRay(core.NewVec3(0.3, 0, 5), direction, 0)

	// Enter and leave the sphere
	for bounce := 0; bounce < 2; bounce++ {
		hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			t.Fatalf("Expected hit on bounce %d", bounce)
		}
		scatter, ok := lens.Scatter(ray, Intersection{Distance: hit.T, Point: hit.Point, Normal: hit.Normal, Material: lens}, sampler)
		if !ok {
			t.Fatal("Refractive material should always scatter")
		}
		ray = scatter.Scattered
	}

	if ray.Direction.Subtract(direction).Length() > 1e-9 {
		t.Errorf("Expected direction %v to be unchanged, got %v", direction, ray.Direction)
	}
}

func TestRefractive_ChoosesByReflectance(t *testing.T) {
	glass := NewRefractive(core.NewColor(1, 1, 1, 1), 1.5)
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: glass}

	// Normal incidence reflectance is R0 = 0.04
	tests := []struct {
		name     string
		draw     float64
		expected core.Vec3
	}{
		{"draw above reflectance refracts", 0.5, core.NewVec3(0, 0, -1)},
		{"draw below reflectance reflects", 0.01, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scatter, ok := glass.Scatter(rayIn, hit, core.NewSequenceSampler(tt.draw))
			if !ok {
				t.Fatal("Refractive material should always scatter")
			}
			if scatter.Scattered.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, scatter.Scattered.Direction)
			}
		})
	}
}

func TestRefractive_TotalInternalReflection(t *testing.T) {
	glass := NewRefractive(core.NewColor(1, 1, 1, 1), 1.5)

	// Exiting the medium at a grazing angle
	direction := core.NewVec3(1, 0, 0.2).Normalize()
	rayIn := core.NewRay(core.NewVec3(-1, 0, -0.2), direction, 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: glass}

	expected := direction.Reflect(hit.Normal)
	for _, draw := range []float64{0.0, 0.5, 0.999} {
		scatter, ok := glass.Scatter(rayIn, hit, core.NewSequenceSampler(draw))
		if !ok {
			t.Fatal("Refractive material should always scatter")
		}
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Draw %f: expected reflection %v, got %v", draw, expected, scatter.Scattered.Direction)
		}
	}
}

func TestRefractive_ExitingBendsAwayFromNormal(t *testing.T) {
	glass := NewRefractive(core.NewColor(1, 1, 1, 1), 1.5)

	direction := core.NewVec3(0.3, 0, 1).Normalize()
	rayIn := core.NewRay(core.NewVec3(-0.3, 0, -1), direction, 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: glass}

	scatter, _ := glass.Scatter(rayIn, hit, core.NewSequenceSampler(0.99))
	out := scatter.Scattered.Direction
	if out.Z <= 0 {
		t.Fatalf("Expected the refracted ray to leave the medium, got %v", out)
	}
	expectedSin := 1.5 * direction.X
	if math.Abs(out.X-expectedSin) > 1e-9 {
		t.Errorf("Expected sin %f, got %f", expectedSin, out.X)
	}
}

func TestRefractive_ExitingUsesTransmittedCosine(t *testing.T) {
	glass := NewRefractive(core.NewColor(1, 1, 1, 1), 1.5)

	direction := core.NewVec3(0.3, 0, 1).Normalize()
	rayIn := core.NewRay(core.NewVec3(-0.3, 0, -1), direction, 0)
	hit := Intersection{Distance: 1, Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: glass}

	// Transmitted cosine gives R ~ 0.0400; 1.5*|d.n| would give R ~ 0.0247
	tests := []struct {
		draw      float64
		transmits bool
	}{
		{0.03, false},
		{0.05, true},
	}

	for _, tt := range tests {
		scatter, _ := glass.Scatter(rayIn, hit, core.NewSequenceSampler(tt.draw))
		out := scatter.Scattered.Direction
		if transmits := out.Z > 0; transmits != tt.transmits {
			t.Errorf("Draw %.2f: expected transmits=%v, got direction %v", tt.draw, tt.transmits, out)
		}
	}
}

func TestReflectance(t *testing.T) {
	if r := Reflectance(1, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected R0 0.04, got %f", r)
	}
	if r := Reflectance(0, 1.5); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected grazing reflectance 1, got %f", r)
	}
	if r := Reflectance(1, 1.0); r != 0 {
		t.Errorf("Matched indices should not reflect at normal incidence, got %f", r)
	}
}
