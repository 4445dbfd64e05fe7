package renderer

import (
	"image"
	"image/color"
)

// PackRGBA8888 packs a color into one 32-bit value, red in the high byte
func PackRGBA8888(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// PackedPixels returns img as packed RGBA8888 values, row-major, top row first
func PackedPixels(img *image.RGBA) []uint32 {
	bounds := img.Bounds()
	packed := make([]uint32, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			packed = append(packed, PackRGBA8888(img.RGBAAt(x, y)))
		}
	}
	return packed
}
