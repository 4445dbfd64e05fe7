package renderer

import (
	"image"

	"github.com/df07/go-tinytracer/pkg/core"
	"github.com/df07/go-tinytracer/pkg/integrator"
	"github.com/df07/go-tinytracer/pkg/scene"
)

// DefaultTileRows is the height of the row bands used for parallel rendering
const DefaultTileRows = 16

// TileRenderer renders rectangular regions of the image with an integrator
type TileRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	samples    int
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(sc *scene.Scene, camera *Camera, integratorInst integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		camera:     camera,
		integrator: integratorInst,
		samples:    samplesPerPixel,
	}
}

// RenderTileBounds renders the pixels inside bounds into img in row-major
// order, drawing every random number from sampler
func (tr *TileRenderer) RenderTileBounds(img *image.RGBA, bounds image.Rectangle, sampler core.Sampler) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, colorToRGBA(tr.samplePixel(x, y, sampler), tr.samples))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * tr.samples,
	}
}

// samplePixel accumulates box-filtered samples jittered within [-0.5, 0.5)
// of the pixel coordinate
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	var colorAccum core.Vec3
	for i := 0; i < tr.samples; i++ {
		offset := core.UniformVec2Range(sampler, -0.5, 0.5)
		ray := tr.camera.GetRay(float32(x)+offset[0], float32(y)+offset[1])
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.scene, sampler))
	}
	return colorAccum
}

// NewTileGrid splits a width x height image into full-width bands of at most
// rows rows, top to bottom
func NewTileGrid(width, height, rows int) []image.Rectangle {
	if rows <= 0 {
		rows = DefaultTileRows
	}

	tiles := make([]image.Rectangle, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		tiles = append(tiles, image.Rect(0, y, width, min(y+rows, height)))
	}
	return tiles
}

// TileSeed derives an independent seed for tile index from the render seed
// using the splitmix64 finalizer
func TileSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
