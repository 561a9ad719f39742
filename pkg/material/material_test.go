package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestKind_StringAndParse(t *testing.T) {
	for _, kind := range []Kind{Diffuse, Metallic, Refractive} {
		parsed, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("Round trip of %v gave %v", kind, parsed)
		}
	}

	if _, err := ParseKind("emissive"); err == nil {
		t.Error("Expected error for unknown kind")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Unexpected name for unknown kind: %s", got)
	}
}

func TestScatter_PreservesRayTime(t *testing.T) {
	hit := Intersection{
		Distance: 1,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.75)
	albedo := core.NewColor(0.8, 0.8, 0.8, 1)

	materials := []*Material{
		NewDiffuse(albedo),
		NewMetallic(albedo, 0.3),
		NewRefractive(albedo, 1.5),
	}

	for _, m := range materials {
		t.Run(m.Kind.String(), func(t *testing.T) {
			hit.Material = m
			result, ok := m.Scatter(rayIn, hit, core.NewSeededSampler(1))
			if !ok {
				t.Fatal("Expected scatter")
			}
			if result.Scattered.Time != rayIn.Time {
				t.Errorf("Expected time %f, got %f", rayIn.Time, result.Scattered.Time)
			}
			if !result.Scattered.Direction.IsUnit() {
				t.Errorf("Scattered direction %v is not unit", result.Scattered.Direction)
			}
			if !result.Attenuation.Equals(albedo) {
				t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
			}
		})
	}
}

func TestScatter_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown kind")
		}
	}()
	m := &Material{Kind: Kind(99)}
	m.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0), Intersection{Normal: core.NewVec3(0, 0, 1)}, core.NewSequenceSampler())
}
