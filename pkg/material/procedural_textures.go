package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard image texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var color core.Vec3
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			} else {
				color = color2
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (row 0) to color2 (last row)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
