package scene

import (
	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/geometry"
	"github.com/df07/go-tinytracer/pkg/material"
)

// sphereList collects spheres for hardcoded scenes, keeping the first error
type sphereList struct {
	spheres []geometry.Sphere
	err     error
}

func (l *sphereList) add(center core.Vec3, radius float32, albedo core.Vec3, roughness, metallic float32) {
	if l.err != nil {
		return
	}
	mat, err := material.New(albedo, roughness, metallic)
	if err != nil {
		l.err = err
		return
	}
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		l.err = err
		return
	}
	l.spheres = append(l.spheres, sphere)
}

// NewDefaultScene creates the reference scene: a grey diffuse sphere, a mirror
// sphere beside it and a large green ground sphere, seen from the origin
func NewDefaultScene() (*Scene, error) {
	var l sphereList
	l.add(core.NewVec3(0, 0, -1), 0.2, core.NewVec3(0.5, 0.5, 0.5), 1, 0)
	l.add(core.NewVec3(0.45, 0, -1), 0.2, core.NewVec3(1, 1, 1), 1, 1)
	l.add(core.NewVec3(0, -100.21, -1), 100, core.NewVec3(0.4, 0.8, 0.5), 1, 0)
	if l.err != nil {
		return nil, l.err
	}

	return New(Camera{Position: core.NewVec3(0, 0, 0)}, l.spheres...)
}

// NewEmptyScene creates a scene with no geometry; every ray sees the sky
func NewEmptyScene() (*Scene, error) {
	return New(Camera{Position: core.NewVec3(0, 0, 0)})
}
