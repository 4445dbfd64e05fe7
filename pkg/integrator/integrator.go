package integrator

import (
	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/scene"
)

const (
	// Attenuation scales every bounce regardless of material
	Attenuation float32 = 0.25

	// ShadowEpsilon is the minimum hit distance, keeping scattered rays from
	// re-hitting the surface they leave
	ShadowEpsilon float32 = 0.001
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// New returns the recursive integrator, or the loop-based one when iterative
// is set. Both produce identical colors for the same sampler state.
func New(config scene.SamplingConfig, iterative bool) Integrator {
	if iterative {
		return NewIterativePathTracingIntegrator(config)
	}
	return NewPathTracingIntegrator(config)
}
