package renderer

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func TestRaytracer_EndToEndSinglePixel(t *testing.T) {
	// Hit point (0,0,-4), normal (0,0,1). The light is 5 away with cosine 0.8,
	// and attenuation 1/(1 + 0.01·25) = 0.8.
	lightColor := core.NewVec3(0.9, 0.6, 0.3)
	s := newSphereScene(lightColor, core.NewVec3(1, 0, 0.01))

	rt, err := NewRaytracer(s, 1, 1, SamplingConfig{SamplesPerPixel: 4, FocusDistance: 10})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	got := rt.RenderPixel(0, 0, newFixedSampler(0.5))
	expected := [3]uint8{147, 98, 49} // round(255 · color · 0.64)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRaytracer_BackgroundPixel(t *testing.T) {
	s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	s.Camera.LookAt = core.NewVec3(0, 0, 1) // look away from the sphere

	rt, err := NewRaytracer(s, 4, 4, SamplingConfig{SamplesPerPixel: 1})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	got := rt.RenderPixel(2, 2, core.NewSeededSampler(1))
	if got != [3]uint8{26, 26, 26} {
		t.Errorf("Expected background (26,26,26), got %v", got)
	}
}

func TestNewRaytracer_Errors(t *testing.T) {
	t.Run("malformed scene", func(t *testing.T) {
		s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
		s.Objects[0].FinishIdx = 5

		_, err := NewRaytracer(s, 10, 10, DefaultSamplingConfig())
		if !errors.Is(err, scene.ErrMalformedScene) {
			t.Errorf("Expected ErrMalformedScene, got %v", err)
		}
	})

	t.Run("empty image", func(t *testing.T) {
		s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
		if _, err := NewRaytracer(s, 0, 10, DefaultSamplingConfig()); err == nil {
			t.Error("Expected error for zero width")
		}
	})
}

func TestRaytracer_NegativeFinishClampsToBlack(t *testing.T) {
	s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	s.Finishes[0] = material.Finish{Ka: -1, Kd: 0.5}

	rt, err := NewRaytracer(s, 1, 1, SamplingConfig{SamplesPerPixel: 1, FocusDistance: 10})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	// -1 ambient + 0.4 diffuse clamps to zero
	got := rt.RenderPixel(0, 0, newFixedSampler(0.5))
	if got != [3]uint8{0, 0, 0} {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestNewRaytracer_NormalizesSampling(t *testing.T) {
	s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	rt, err := NewRaytracer(s, 1, 1, SamplingConfig{SamplesPerPixel: -3, Aperture: -1, FocusDistance: 0})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	got := rt.SamplingConfig()
	expected := SamplingConfig{SamplesPerPixel: 1, Aperture: 0, FocusDistance: 10}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestRaytracer_RenderBounds(t *testing.T) {
	s := newSphereScene(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0))
	rt, err := NewRaytracer(s, 8, 8, SamplingConfig{SamplesPerPixel: 2, FocusDistance: 10})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	fb := NewFrameBuffer(8, 8)
	samples := rt.RenderBounds(image.Rect(2, 3, 5, 7), fb, core.NewSeededSampler(3))
	if samples != 3*4*2 {
		t.Errorf("Expected %d samples, got %d", 3*4*2, samples)
	}

	// Pixels outside the bounds stay untouched
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 7
			if !inside && fb.At(x, y) != ([3]uint8{}) {
				t.Errorf("Pixel (%d,%d) outside bounds was written: %v", x, y, fb.At(x, y))
			}
			if inside && fb.At(x, y) == ([3]uint8{}) {
				t.Errorf("Pixel (%d,%d) inside bounds was not written", x, y)
			}
		}
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.1, 26},
		{-0.5, 0},
		{3, 255},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%f): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
