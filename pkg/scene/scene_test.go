package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func newTestScene() *Scene {
	s := NewScene(CameraParams{
		Eye:    core.NewVec3(0, 0, 5),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   60,
	})
	s.AddLight(lights.NewAmbientLight(core.NewVec3(1, 1, 1)))
	s.AddPigment(material.NewSolidPigment(core.NewVec3(1, 0, 0)))
	s.AddFinish(material.DefaultFinish())
	return s
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name    string
		object  Object
		wantErr bool
	}{
		{"valid", Object{Shape: geometry.NewSphere(core.Vec3{}, 1)}, false},
		{"missing shape", Object{}, true},
		{"pigment index too large", Object{Shape: geometry.NewSphere(core.Vec3{}, 1), PigmentIdx: 1}, true},
		{"negative pigment index", Object{Shape: geometry.NewSphere(core.Vec3{}, 1), PigmentIdx: -1}, true},
		{"finish index too large", Object{Shape: geometry.NewSphere(core.Vec3{}, 1), FinishIdx: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			s.Objects = append(s.Objects, tt.object)

			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedScene) {
					t.Errorf("Expected ErrMalformedScene, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestScene_FindClosestHit_Miss(t *testing.T) {
	s := newTestScene()
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), 0, 0)

	hit := s.FindClosestHit(core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)))
	if hit.Hit {
		t.Fatal("Expected miss")
	}
	if !math.IsInf(hit.T, 1) {
		t.Errorf("Expected T=+Inf on miss, got %f", hit.T)
	}
	if hit.ObjectIndex != -1 {
		t.Errorf("Expected ObjectIndex -1 on miss, got %d", hit.ObjectIndex)
	}
}

func TestScene_FindClosestHit_Empty(t *testing.T) {
	s := newTestScene()
	hit := s.FindClosestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if hit.Hit || hit.ObjectIndex != -1 {
		t.Errorf("Expected miss on an empty scene, got %+v", hit)
	}
}

func TestScene_FindClosestHit_Nearest(t *testing.T) {
	s := newTestScene()
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -10), 1), 0, 0) // far
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), 0, 0)  // near
	s.AddObject(geometry.NewTriangle(
		core.NewVec3(-1, -1, 2),
		core.NewVec3(1, -1, 2),
		core.NewVec3(0, 1, 2),
	), 0, 0) // behind the origin

	hit := s.FindClosestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !hit.Hit {
		t.Fatal("Expected hit")
	}
	if hit.ObjectIndex != 1 {
		t.Errorf("Expected nearest object 1, got %d", hit.ObjectIndex)
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected T=3, got %f", hit.T)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestScene_FindClosestHit_TieKeepsFirst(t *testing.T) {
	s := newTestScene()
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), 0, 0)
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), 0, 0)

	hit := s.FindClosestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if hit.ObjectIndex != 0 {
		t.Errorf("Expected first object to win a tie, got %d", hit.ObjectIndex)
	}
}

func TestScene_ObjectAt(t *testing.T) {
	s := newTestScene()
	blue := s.AddPigment(material.NewSolidPigment(core.NewVec3(0, 0, 1)))
	mirror := s.AddFinish(material.Finish{Kr: 1})
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), blue, mirror)

	hit := s.FindClosestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	pigment, finish := s.ObjectAt(hit)
	if got := pigment.Evaluate(hit.Point); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected blue pigment, got %v", got)
	}
	if finish.Kr != 1 {
		t.Errorf("Expected mirror finish, got %+v", finish)
	}
}

func TestScene_Validate_AcceptsAnyFinish(t *testing.T) {
	tests := []struct {
		name   string
		finish material.Finish
	}{
		{"negative ambient", material.Finish{Ka: -0.1, Kd: 0.5}},
		{"negative reflection", material.Finish{Kr: -1}},
		{"transmissive without index of refraction", material.Finish{Kt: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			finish := s.AddFinish(tt.finish)
			s.AddObject(geometry.NewSphere(core.Vec3{}, 1), 0, finish)
			if err := s.Validate(); err != nil {
				t.Errorf("Expected finish to be accepted, got %v", err)
			}
		})
	}
}
