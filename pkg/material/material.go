package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-tinytracer/pkg/core"
)

// ErrAlbedoOutOfRange is returned when an albedo component lies outside [0, 1]
var ErrAlbedoOutOfRange = errors.New("albedo component out of range [0, 1]")

// Material describes how a surface reflects light.
// Roughness is carried for scene descriptions but scattering does not use it:
// diffuse surfaces are always fully rough and metals are perfect mirrors.
type Material struct {
	Albedo    core.Vec3 // Base reflectance, components in [0, 1]
	Roughness float32
	Metallic  float32 // 0 = diffuse, nonzero = mirror
}

// New creates a validated material
func New(albedo core.Vec3, roughness, metallic float32) (Material, error) {
	m := Material{Albedo: albedo, Roughness: roughness, Metallic: metallic}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// NewLambertian creates a diffuse material with full roughness
func NewLambertian(albedo core.Vec3) (Material, error) {
	return New(albedo, 1, 0)
}

// NewMetal creates a mirror material
func NewMetal(albedo core.Vec3) (Material, error) {
	return New(albedo, 1, 1)
}

// Validate checks that every albedo component is within [0, 1]
func (m Material) Validate() error {
	for i, c := range m.Albedo {
		// NaN fails this check
		if !(c >= 0 && c <= 1) {
			return fmt.Errorf("%w: channel %d is %v", ErrAlbedoOutOfRange, i, c)
		}
	}
	return nil
}

// IsMetallic reports whether the material reflects like a mirror
func (m Material) IsMetallic() bool {
	return m.Metallic != 0
}

// Scatter returns the ray leaving hit point p with unit normal n.
// Metals mirror the incoming direction (p - rayIn.Origin) about n. Diffuse
// surfaces scatter along n plus a random unit vector, falling back to n when
// that sum cancels out.
func (m Material) Scatter(rayIn core.Ray, p, n core.Vec3, sampler core.Sampler) core.Ray {
	if m.IsMetallic() {
		return core.NewRay(p, core.Reflect(p.Sub(rayIn.Origin), n))
	}

	direction := n.Add(core.SampleOnUnitSphere(sampler))
	if core.NearZero(direction) {
		direction = n
	}

	return core.NewRay(p, direction)
}
