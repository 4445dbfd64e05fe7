package scene

import (
	"math"

	"github.com/df07/go-tinytracer/pkg/core"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.Clamp(core.NewVec3(float32(r), float32(g), float32(blue)), 0, 1)
}

// NewSphereGridScene creates a grid of small spheres on a ground sphere.
// Hue varies across columns; rows alternate between diffuse and mirror spheres.
func NewSphereGridScene() (*Scene, error) {
	const (
		columns = 7
		rows    = 3
		radius  = 0.12
		spacing = 0.3
		groundY = -0.12
	)

	var l sphereList
	l.add(core.NewVec3(0, groundY-100, -2), 100, core.NewVec3(0.5, 0.5, 0.5), 1, 0)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := (float32(col) - float32(columns-1)/2) * spacing
			z := -1.4 - float32(row)*spacing*1.5
			hue := float64(col) / float64(columns) * 360.0
			albedo := oklchToRGB(0.7, 0.15, hue)

			var metallic float32
			if row%2 == 1 {
				metallic = 1
			}
			l.add(core.NewVec3(x, groundY+radius, z), radius, albedo, 1, metallic)
		}
	}
	if l.err != nil {
		return nil, l.err
	}

	s, err := New(Camera{Position: core.NewVec3(0, 0.15, 0)}, l.spheres...)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.SamplesPerPixel = 100
	s.SamplingConfig.MaxDepth = 40
	return s, nil
}
