package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-tinytracer/pkg/core"
)

// sequenceSampler replays a fixed list of scalars, cycling when exhausted
type sequenceSampler struct {
	values []float32
	next   int
}

func (s *sequenceSampler) Get1D() float32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	return core.Vec2{s.Get1D(), s.Get1D()}
}

func (s *sequenceSampler) Get3D() core.Vec3 {
	return core.Vec3{s.Get1D(), s.Get1D(), s.Get1D()}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		albedo    core.Vec3
		expectErr bool
	}{
		{"grey", core.NewVec3(0.5, 0.5, 0.5), false},
		{"bounds inclusive", core.NewVec3(0, 1, 0), false},
		{"above one", core.NewVec3(1.01, 0.5, 0.5), true},
		{"negative", core.NewVec3(0.5, -0.1, 0.5), true},
		{"NaN", core.NewVec3(0.5, 0.5, float32(math.NaN())), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.albedo, 1, 0)
			if tt.expectErr {
				if !errors.Is(err, ErrAlbedoOutOfRange) {
					t.Errorf("Expected ErrAlbedoOutOfRange, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestScatter_MetalMirrorsIncomingDirection(t *testing.T) {
	metal, err := NewMetal(core.NewVec3(1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	// Ray travelling down and to the right hits the floor at the origin
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	p := core.NewVec3(0, 0, 0)
	n := core.NewVec3(0, 1, 0)

	sampler := &sequenceSampler{values: []float32{0.9}}
	scattered := metal.Scatter(rayIn, p, n, sampler)

	if scattered.Origin != p {
		t.Errorf("Expected scattered origin %v, got %v", p, scattered.Origin)
	}
	if scattered.Direction != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected mirror direction (1, 1, 0), got %v", scattered.Direction)
	}
	if sampler.next != 0 {
		t.Errorf("Metal scatter should not draw random numbers, drew %d", sampler.next)
	}
}

func TestScatter_RoughnessIsIgnored(t *testing.T) {
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	p, n := core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)

	smooth := Material{Albedo: core.NewVec3(1, 1, 1), Roughness: 0, Metallic: 1}
	rough := Material{Albedo: core.NewVec3(1, 1, 1), Roughness: 1, Metallic: 1}

	a := smooth.Scatter(rayIn, p, n, core.NewSeededSampler(1))
	b := rough.Scatter(rayIn, p, n, core.NewSeededSampler(1))
	if a != b {
		t.Errorf("Roughness changed metal scatter: %v vs %v", a, b)
	}
}

func TestScatter_DiffuseStaysInNormalHemisphere(t *testing.T) {
	diffuse, err := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if err != nil {
		t.Fatal(err)
	}

	sampler := core.NewSeededSampler(42)
	rayIn := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	p, n := core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		scattered := diffuse.Scatter(rayIn, p, n, sampler)
		if scattered.Direction.Dot(n) < 0 {
			t.Fatalf("Scatter %d below the surface: %v", i, scattered.Direction)
		}
		if scattered.Direction.Len() > 2+1e-5 {
			t.Fatalf("Scatter %d longer than |n|+1: %v", i, scattered.Direction)
		}
	}
}

func TestScatter_DiffuseDegenerateFallsBackToNormal(t *testing.T) {
	diffuse, err := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if err != nil {
		t.Fatal(err)
	}

	// (0.5, 0.25, 0.5) maps to the candidate (0, -0.5, 0), which normalizes
	// to exactly -n and cancels the normal
	sampler := &sequenceSampler{values: []float32{0.5, 0.25, 0.5}}
	n := core.NewVec3(0, 1, 0)

	scattered := diffuse.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), core.Vec3{}, n, sampler)
	if scattered.Direction != n {
		t.Errorf("Expected fallback direction %v, got %v", n, scattered.Direction)
	}
}
