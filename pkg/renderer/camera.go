package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-tinytracer/pkg/core"
)

// DefaultVFov is the vertical field of view in degrees
const DefaultVFov float32 = 60

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position core.Vec3
	Width    int     // Image width in pixels
	Height   int     // Image height in pixels
	VFov     float32 // Vertical field of view in degrees
}

// Camera is a pinhole camera looking down -Z with +Y up.
// The image plane sits one unit in front of the camera.
type Camera struct {
	origin      core.Vec3
	width       float32
	height      float32
	aspectRatio float32
	fovScale    float32 // tan(vfov/2)
}

// NewCamera creates a pinhole camera for a width x height image
func NewCamera(config CameraConfig) *Camera {
	vfov := config.VFov
	if vfov <= 0 {
		vfov = DefaultVFov
	}
	width := float32(config.Width)
	height := float32(config.Height)

	return &Camera{
		origin:      config.Position,
		width:       width,
		height:      height,
		aspectRatio: width / height,
		fovScale:    float32(math.Tan(float64(mgl32.DegToRad(vfov / 2)))),
	}
}

// PixelToWorld maps a (possibly jittered) pixel coordinate to the image plane.
// x grows right and y grows down in pixel space; the result is y-up.
func (c *Camera) PixelToWorld(x, y float32) core.Vec2 {
	return core.Vec2{
		(2*((x+0.5)/c.width) - 1) * c.aspectRatio * c.fovScale,
		(1 - 2*((y+0.5)/c.height)) * c.fovScale,
	}
}

// GetRay returns the normalized primary ray through pixel coordinate (x, y)
func (c *Camera) GetRay(x, y float32) core.Ray {
	pos := c.PixelToWorld(x, y)
	direction := core.NewVec3(pos[0], pos[1], -1).Normalize()
	return core.NewRay(c.origin, direction)
}
