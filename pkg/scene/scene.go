package scene

import (
	"fmt"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/geometry"
)

// SkyColor is the ambient background returned for rays that escape the scene
var SkyColor = core.NewVec3(0.5, 0.8, 0.9)

// Camera holds the viewpoint of the scene. It always looks down -Z with +Y up.
type Camera struct {
	Position core.Vec3
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the random stream(s)
	Workers         int   // 1 renders sequentially on a single stream
}

// DefaultSamplingConfig returns the values the renderer was tuned with:
// a third of a 1920x1080 display, 150 samples, 50 bounces.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 150,
		MaxDepth:        50,
		Seed:            0,
		Workers:         1,
	}
}

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering.
type Scene struct {
	Camera         Camera
	Spheres        []geometry.Sphere // Iteration order breaks ties between equal hits
	Background     core.Vec3
	SamplingConfig SamplingConfig
}

// HitRecord identifies the closest sphere hit by a ray
type HitRecord struct {
	Index int     // Index into Scene.Spheres
	T     float32 // Ray parameter of the hit
}

// New creates a validated scene with the default sky and sampling config
func New(camera Camera, spheres ...geometry.Sphere) (*Scene, error) {
	s := &Scene{
		Camera:         camera,
		Spheres:        append([]geometry.Sphere(nil), spheres...),
		Background:     SkyColor,
		SamplingConfig: DefaultSamplingConfig(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every sphere in the scene
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	return nil
}

// Hit returns the closest sphere intersection in (tMin, tMax).
// When two spheres report the same t the earlier one wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	closest := HitRecord{Index: -1, T: tMax}
	hitAnything := false

	for i := range s.Spheres {
		if t, ok := s.Spheres[i].Hit(ray, tMin, closest.T); ok {
			closest = HitRecord{Index: i, T: t}
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Sphere returns the sphere referenced by a hit record
func (s *Scene) Sphere(rec HitRecord) geometry.Sphere {
	return s.Spheres[rec.Index]
}

// Len returns the number of spheres in the scene
func (s *Scene) Len() int {
	return len(s.Spheres)
}
