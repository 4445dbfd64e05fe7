package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/material"
)

// NoHit is the t value reported when a ray misses
const NoHit float32 = -1

// ErrInvalidRadius is returned for spheres whose radius is not positive
var ErrInvalidRadius = errors.New("sphere radius must be positive")

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere, validating its radius and material
func NewSphere(center core.Vec3, radius float32, mat material.Material) (Sphere, error) {
	s := Sphere{Center: center, Radius: radius, Material: mat}
	if err := s.Validate(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// Validate checks the radius and material invariants
func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, s.Radius)
	}
	if err := s.Material.Validate(); err != nil {
		return fmt.Errorf("sphere at %v: %w", s.Center, err)
	}
	return nil
}

// Hit returns the smallest t in the open interval (tMin, tMax) where the ray
// meets the sphere. Both bounds are exclusive. On a miss it returns
// (NoHit, false).
func (s Sphere) Hit(ray core.Ray, tMin, tMax float32) (float32, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Sub(ray.Origin)

	// Half-angle form of the quadratic: a·t² - 2h·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	h := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return NoHit, false
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (h + sqrtD) / a
		if root <= tMin || root >= tMax {
			return NoHit, false
		}
	}

	return root, true
}

// Normal returns the outward unit normal at surface point p
func (s Sphere) Normal(p core.Vec3) core.Vec3 {
	return p.Sub(s.Center).Mul(1 / s.Radius)
}
