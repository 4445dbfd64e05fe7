package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/material"
)

var grey = material.Material{Albedo: core.NewVec3(0.5, 0.5, 0.5), Roughness: 1}

func newTestSphere(t *testing.T, center core.Vec3, radius float32) Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, grey)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name     string
		radius   float32
		material material.Material
		target   error
	}{
		{"positive radius", 0.2, grey, nil},
		{"zero radius", 0, grey, ErrInvalidRadius},
		{"negative radius", -1, grey, ErrInvalidRadius},
		{"NaN radius", float32(math.NaN()), grey, ErrInvalidRadius},
		{"bad albedo", 1, material.Material{Albedo: core.NewVec3(2, 0, 0)}, material.ErrAlbedoOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(core.NewVec3(0, 0, -1), tt.radius, tt.material)
			if tt.target == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	tHit, isHit := sphere.Hit(ray, 0.001, float32(math.Inf(1)))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", tHit)
	}
	if tHit != NoHit {
		t.Errorf("Expected NoHit sentinel, got %f", tHit)
	}
}

func TestSphere_Hit_NegativeDiscriminantAlwaysMisses(t *testing.T) {
	sampler := core.NewSeededSampler(3)

	for i := 0; i < 1000; i++ {
		center := core.UniformVec3Range(sampler, -5, 5)
		radius := core.UniformFloatRange(sampler, 0.1, 2)
		sphere := newTestSphere(t, center, radius)

		// Pass the line at a distance greater than the radius
		origin := core.UniformVec3Range(sampler, -5, 5)
		dir := core.SampleOnUnitSphere(sampler)
		toCenter := center.Sub(origin)
		closest := origin.Add(dir.Mul(toCenter.Dot(dir)))
		offset := closest.Sub(center)
		if offset.Len() < 1e-3 {
			continue
		}
		shift := offset.Normalize().Mul(radius + 0.5)
		ray := core.NewRay(origin.Add(shift), dir)

		oc := center.Sub(ray.Origin)
		h := dir.Dot(oc)
		if h*h-dir.Dot(dir)*(oc.Dot(oc)-radius*radius) >= 0 {
			continue
		}
		if tHit, ok := sphere.Hit(ray, -1e9, 1e9); ok || tHit != NoHit {
			t.Fatalf("Ray %d: expected NoHit for negative discriminant, got %f", i, tHit)
		}
	}
}

func TestSphere_Hit_PointLiesOnSurface(t *testing.T) {
	sampler := core.NewSeededSampler(11)

	for i := 0; i < 1000; i++ {
		center := core.UniformVec3Range(sampler, -3, 3)
		radius := core.UniformFloatRange(sampler, 0.1, 2)
		sphere := newTestSphere(t, center, radius)

		// Start outside the sphere and aim at a point inside it
		origin := center.Add(core.SampleOnUnitSphere(sampler).Mul(radius + core.UniformFloatRange(sampler, 0.5, 5)))
		target := center.Add(core.SampleOnUnitSphere(sampler).Mul(radius * 0.5))
		ray := core.NewRay(origin, target.Sub(origin).Normalize())

		tHit, ok := sphere.Hit(ray, 0.001, float32(math.Inf(1)))
		if !ok || tHit <= 0 {
			t.Fatalf("Ray %d: expected positive hit, got t=%f ok=%t", i, tHit, ok)
		}
		dist := ray.At(tHit).Sub(center).Len()
		if math.Abs(float64(dist-radius)) > 1e-4 {
			t.Fatalf("Ray %d: hit point at distance %f from center, radius %f", i, dist, radius)
		}
	}
}

func TestSphere_Hit_NearAndFarRoots(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectedT float32
	}{
		{"outside takes near root", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 1},
		{"inside takes far root", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1},
		{"unnormalized direction", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			tHit, ok := sphere.Hit(ray, 0.001, float32(math.Inf(1)))
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(float64(tHit-tt.expectedT)) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, tHit)
			}
		})
	}
}

func TestSphere_Hit_BoundsAreExclusive(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Roots are exactly t=1 and t=3
	if tHit, ok := sphere.Hit(ray, 0.001, 1); ok {
		t.Errorf("Expected miss: near root equals tMax, got t=%f", tHit)
	}
	if tHit, ok := sphere.Hit(ray, 1, 10); !ok || tHit != 3 {
		t.Errorf("Expected far root t=3 when near root equals tMin, got t=%f ok=%t", tHit, ok)
	}
	if _, ok := sphere.Hit(ray, 3, 10); ok {
		t.Error("Expected miss: far root equals tMin")
	}
	if tHit, ok := sphere.Hit(ray, 0.5, 1.5); !ok || tHit != 1 {
		t.Errorf("Expected near root t=1, got t=%f ok=%t", tHit, ok)
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, -100.21, -1), 100)

	n := sphere.Normal(core.NewVec3(0, -0.21, -1))
	if !n.ApproxEqualThreshold(core.NewVec3(0, 1, 0), 1e-5) {
		t.Errorf("Expected up normal, got %v", n)
	}
	if math.Abs(float64(n.Len())-1) > 1e-5 {
		t.Errorf("Expected unit normal, got length %f", n.Len())
	}
}
