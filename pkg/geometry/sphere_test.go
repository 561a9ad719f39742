package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"passes beside", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"points away", core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction, 0)
			if hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1)); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBack(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside keeps outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	solid, ok := NewSphere(core.NewVec3(0, 0, 0), 1.0).Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on positive-radius sphere")
	}
	hollow, ok := NewSphere(core.NewVec3(0, 0, 0), -1.0).Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on negative-radius sphere")
	}

	if math.Abs(solid.T-hollow.T) > 1e-12 {
		t.Errorf("Geometry should match: %f vs %f", solid.T, hollow.T)
	}
	if !hollow.Normal.Equals(solid.Normal.Negate()) {
		t.Errorf("Expected inward normal %v, got %v", solid.Normal.Negate(), hollow.Normal)
	}
	if hollow.Normal.Dot(ray.Direction) <= 0 {
		t.Errorf("Hollow sphere normal %v should point inward", hollow.Normal)
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1), 0)

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 0)

	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// The near root is excluded so the far root is reported
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far intersection")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far intersection at t=3, got t=%f", hit.T)
	}
}

func TestSphere_Hit_NegativeTMinFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0)

	// The root behind the origin (t=-1) must not be reported
	hit, isHit := sphere.Hit(ray, -10, math.Inf(1))
	if !isHit {
		t.Fatal("Expected exit intersection")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
}
