package renderer

import (
	"image"
	"image/color"
)

// FrameBuffer holds 8-bit RGB pixels in row-major order, three bytes per pixel
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrameBuffer creates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Set stores the color of pixel (x, y). Distinct pixels occupy disjoint
// bytes, so workers filling disjoint regions need no locking.
func (fb *FrameBuffer) Set(x, y int, rgb [3]uint8) {
	i := (y*fb.Width + x) * 3
	fb.Pix[i+0] = rgb[0]
	fb.Pix[i+1] = rgb[1]
	fb.Pix[i+2] = rgb[2]
}

// At returns the color of pixel (x, y)
func (fb *FrameBuffer) At(x, y int) [3]uint8 {
	i := (y*fb.Width + x) * 3
	return [3]uint8{fb.Pix[i+0], fb.Pix[i+1], fb.Pix[i+2]}
}

// ToImage converts the buffer to an opaque RGBA image
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			rgb := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}

// SubImage copies the pixels inside r into a new image whose bounds are r
func (fb *FrameBuffer) SubImage(r image.Rectangle) *image.RGBA {
	r = r.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			rgb := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}
