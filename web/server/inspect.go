package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectIndex  int                    `json:"objectIndex"`
	GeometryType string                 `json:"geometryType,omitempty"`
	PigmentType  string                 `json:"pigmentType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Geometry     map[string]interface{} `json:"geometry,omitempty"`
	Pigment      map[string]interface{} `json:"pigment,omitempty"`
	Finish       *material.Finish       `json:"finish,omitempty"`
}

// pixelCenter samples the middle of every pixel
type pixelCenter struct{}

func (pixelCenter) Get1D() float64  { return 0.5 }
func (pixelCenter) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }

// handleInspect traces the primary ray through the center of pixel (x, y)
// and reports what it strikes
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	query := r.URL.Query()
	x, err := parseIntParam(query, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.loadScene(w, r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, req.Width, req.Height, x, y))
}

func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) InspectResponse {
	camera := renderer.NewCamera(sceneObj.Camera, width, height, renderer.SamplingConfig{SamplesPerPixel: 1})
	ray := camera.GetRay(x, y, pixelCenter{})

	hit := sceneObj.FindClosestHit(ray)
	if !hit.Hit {
		return InspectResponse{ObjectIndex: -1}
	}

	pigment, finish := sceneObj.ObjectAt(hit)
	shape := sceneObj.Objects[hit.ObjectIndex].Shape
	pigmentType, pigmentProps := extractPigmentInfo(pigment)

	return InspectResponse{
		Hit:          true,
		ObjectIndex:  hit.ObjectIndex,
		GeometryType: shape.Kind().String(),
		PigmentType:  pigmentType,
		Point:        toArray(hit.Point),
		Normal:       toArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Geometry:     extractGeometryInfo(shape),
		Pigment:      pigmentProps,
		Finish:       &finish,
	}
}

// extractPigmentInfo describes a pigment with type assertions
func extractPigmentInfo(p material.Pigment) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := p.(type) {
	case *material.SolidPigment:
		properties["color"] = hexColor(m.Color)
		return "solid", properties

	case *material.CheckerPigment:
		properties["color1"] = hexColor(m.Color1)
		properties["color2"] = hexColor(m.Color2)
		properties["scale"] = m.Scale
		return "checker", properties

	case *material.TexturePigment:
		if m.Texture != nil {
			properties["width"] = m.Texture.Width
			properties["height"] = m.Texture.Height
		}
		properties["p0"] = m.P0
		properties["p1"] = m.P1
		return "texmap", properties
	}

	return "unknown", properties
}

// extractGeometryInfo describes a primitive's parameters
func extractGeometryInfo(shape geometry.Primitive) map[string]interface{} {
	properties := make(map[string]interface{})

	switch g := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(g.Center)
		properties["radius"] = g.Radius
	case *geometry.Polyhedron:
		properties["faces"] = len(g.Faces)
	case *geometry.Triangle:
		properties["v0"] = toArray(g.V0)
		properties["v1"] = toArray(g.V1)
		properties["v2"] = toArray(g.V2)
	case *geometry.Cylinder:
		properties["base"] = toArray(g.Base)
		properties["axis"] = toArray(g.Axis)
		properties["height"] = g.Height
		properties["radius"] = g.Radius
	case *geometry.Cone:
		properties["apex"] = toArray(g.Base)
		properties["axis"] = toArray(g.Axis)
		properties["height"] = g.Height
		properties["radius"] = g.Radius
	case *geometry.Quadric:
		properties["coefficients"] = [10]float64{g.A, g.B, g.C, g.D, g.E, g.F, g.G, g.H, g.I, g.J}
	}

	return properties
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
