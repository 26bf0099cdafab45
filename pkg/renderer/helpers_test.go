package renderer

import (
	"fmt"
	"math"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// sequenceSampler replays a fixed list of values, wrapping around at the end
type sequenceSampler struct {
	values []float64
	next   int
}

func newFixedSampler(v float64) *sequenceSampler {
	return &sequenceSampler{values: []float64{v}}
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

// newSphereScene creates a white diffuse sphere at (0,0,-5) seen from the
// origin, lit by a point light at (0,3,0)
func newSphereScene(lightColor, attenuation core.Vec3) *scene.Scene {
	s := scene.NewScene(scene.CameraParams{
		Eye:    core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   60,
	})
	s.AddLight(lights.NewAmbientLight(core.NewVec3(1, 1, 1)))
	s.AddLight(lights.NewLight(core.NewVec3(0, 3, 0), lightColor, attenuation))
	pigment := s.AddPigment(material.NewSolidPigment(core.NewVec3(1, 1, 1)))
	finish := s.AddFinish(material.Finish{Kd: 1})
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), pigment, finish)
	return s
}
