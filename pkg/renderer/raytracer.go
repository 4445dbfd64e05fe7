package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/integrator"
	"github.com/df07/go-tinytracer/pkg/scene"
)

// ErrInvalidConfig is returned for sampling configurations that cannot render
var ErrInvalidConfig = errors.New("invalid sampling config")

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     scene.SamplingConfig
}

// NewRaytracer creates a raytracer for sc using config and the recursive integrator
func NewRaytracer(sc *scene.Scene, config scene.SamplingConfig) (*Raytracer, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Raytracer{
		scene: sc,
		camera: NewCamera(CameraConfig{
			Position: sc.Camera.Position,
			Width:    config.Width,
			Height:   config.Height,
			VFov:     DefaultVFov,
		}),
		integrator: integrator.NewPathTracingIntegrator(config),
		config:     config,
	}, nil
}

// ValidateConfig checks that a sampling config describes a renderable image
func ValidateConfig(config scene.SamplingConfig) error {
	switch {
	case config.Width <= 0 || config.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, config.Width, config.Height)
	case config.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, config.SamplesPerPixel)
	case config.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, config.MaxDepth)
	case config.Workers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, config.Workers)
	}
	return nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetCameraConfig replaces the camera, keeping the image size of the sampling config
func (rt *Raytracer) SetCameraConfig(config CameraConfig) {
	config.Width = rt.config.Width
	config.Height = rt.config.Height
	rt.camera = NewCamera(config)
}

// RenderPass renders the whole image and returns it with render statistics.
// With one worker the image is rendered row by row from a single random
// stream seeded with config.Seed. Otherwise rows are split into tiles, each
// with its own stream, rendered on a worker pool; the result depends only on
// the seed, not on the number of workers.
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	start := time.Now()

	logger := core.Logger()
	logger.Info("render started",
		"width", rt.config.Width, "height", rt.config.Height,
		"samples", rt.config.SamplesPerPixel, "depth", rt.config.MaxDepth,
		"workers", rt.config.Workers)

	var stats RenderStats
	if rt.config.Workers == 1 {
		tr := NewTileRenderer(rt.scene, rt.camera, rt.integrator, rt.config.SamplesPerPixel)
		stats = tr.RenderTileBounds(img, img.Bounds(), core.NewSeededSampler(rt.config.Seed))
		stats.Tiles = 1
		stats.Workers = 1
	} else {
		stats = rt.renderParallel(img)
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	logger.Info("render finished",
		"duration", stats.Duration, "samples", stats.TotalSamples,
		"luminance", stats.AverageLuminance)

	return img, stats
}

// renderParallel renders row tiles on a worker pool
func (rt *Raytracer) renderParallel(img *image.RGBA) RenderStats {
	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tiles := NewTileGrid(rt.config.Width, rt.config.Height, DefaultTileRows)
	pool := NewWorkerPool(rt.scene, rt.camera, rt.integrator, rt.config.SamplesPerPixel, numWorkers, len(tiles))
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Bounds: tile,
			TaskID: i,
			Seed:   TileSeed(rt.config.Seed, i),
			Image:  img,
		})
	}
	pool.Stop()

	stats := RenderStats{Tiles: len(tiles), Workers: pool.GetNumWorkers()}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	return stats
}

// colorToRGBA averages an accumulated color over its sample count, applies
// the square-root tone curve (gamma 2), clamps to [0, 1] and truncates each
// channel to 8 bits. Alpha is always opaque.
func colorToRGBA(accum core.Vec3, samples int) color.RGBA {
	n := float32(samples)
	avg := core.NewVec3(accum[0]/n, accum[1]/n, accum[2]/n)
	c := core.Clamp(core.Sqrt(avg), 0, 1)

	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	}
}
