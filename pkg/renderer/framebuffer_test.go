package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameBuffer_RowMajorLayout(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Set(2, 1, [3]uint8{10, 20, 30})

	i := (1*3 + 2) * 3
	if fb.Pix[i] != 10 || fb.Pix[i+1] != 20 || fb.Pix[i+2] != 30 {
		t.Errorf("Expected bytes at offset %d, got %v", i, fb.Pix[i:i+3])
	}
	if got := fb.At(2, 1); got != [3]uint8{10, 20, 30} {
		t.Errorf("Expected At to return (10,20,30), got %v", got)
	}
	if len(fb.Pix) != 3*2*3 {
		t.Errorf("Expected %d bytes, got %d", 18, len(fb.Pix))
	}
}

func TestFrameBuffer_ToImage(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(0, 0, [3]uint8{255, 0, 0})
	fb.Set(1, 1, [3]uint8{0, 0, 255})

	img := fb.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at (0,0), got %v", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected blue at (1,1), got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected opaque black at (1,0), got %v", got)
	}
}

func TestFrameBuffer_SubImage(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Set(2, 1, [3]uint8{1, 2, 3})

	img := fb.SubImage(image.Rect(2, 1, 6, 3))
	if img.Bounds() != image.Rect(2, 1, 4, 3) {
		t.Fatalf("Expected bounds clipped to (2,1)-(4,3), got %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Expected (1,2,3,255), got %v", got)
	}
	if got := img.RGBAAt(3, 2); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black, got %v", got)
	}
}
