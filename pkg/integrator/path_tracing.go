package integrator

import (
	"math"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/scene"
)

var infinity = float32(math.Inf(1))

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray, bouncing at most MaxDepth times
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, sc, sampler, pt.config.MaxDepth)
}

// rayColorRecursive returns black once the bounce budget is spent, the sky
// for escaping rays and otherwise 0.25 * albedo * (color of the scattered ray)
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, isHit := sc.Hit(ray, ShadowEpsilon, infinity)
	if !isHit {
		return sc.Background
	}

	scattered, albedo := scatterAtHit(ray, sc, rec, sampler)
	factor := albedo.Mul(Attenuation)
	return core.MultiplyVec(factor, pt.rayColorRecursive(scattered, sc, sampler, depth-1))
}

// scatterAtHit computes the hit point and normal for rec and asks the sphere's
// material for the next ray
func scatterAtHit(ray core.Ray, sc *scene.Scene, rec scene.HitRecord, sampler core.Sampler) (core.Ray, core.Vec3) {
	sphere := sc.Sphere(rec)
	p := ray.At(rec.T)
	n := sphere.Normal(p)
	return sphere.Material.Scatter(ray, p, n, sampler), sphere.Material.Albedo
}
