package integrator

import (
	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/scene"
)

// IterativePathTracingIntegrator computes the same estimate as
// PathTracingIntegrator with a loop instead of recursion.
// Per-bounce factors are pushed on a stack while walking the path and folded
// right to left once the path ends, so every float operation happens in the
// same order as the recursive form.
type IterativePathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewIterativePathTracingIntegrator creates a loop-based path tracing integrator
func NewIterativePathTracingIntegrator(config scene.SamplingConfig) *IterativePathTracingIntegrator {
	return &IterativePathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray, bouncing at most MaxDepth times
func (it *IterativePathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	factors := make([]core.Vec3, 0, min(max(it.config.MaxDepth, 0), 64))

	// Terminal color of the path: black when depth runs out, sky on escape
	var color core.Vec3
	for depth := it.config.MaxDepth; depth > 0; depth-- {
		rec, isHit := sc.Hit(ray, ShadowEpsilon, infinity)
		if !isHit {
			color = sc.Background
			break
		}

		var albedo core.Vec3
		ray, albedo = scatterAtHit(ray, sc, rec, sampler)
		factors = append(factors, albedo.Mul(Attenuation))
	}

	for i := len(factors) - 1; i >= 0; i-- {
		color = core.MultiplyVec(factors[i], color)
	}
	return color
}
