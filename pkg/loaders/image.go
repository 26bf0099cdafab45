package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 first, channels in [0,1]
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return fromImage(img), nil
}

func fromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadTexture loads a texture image. Files ending in .ppm are read as PPM,
// anything else is decoded as PNG or JPEG.
func LoadTexture(filename string) (*material.ImageTexture, error) {
	var data *ImageData
	var err error

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		data, err = LoadPPM(filename)
	} else {
		data, err = LoadImage(filename)
	}
	if err != nil {
		return nil, err
	}

	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
