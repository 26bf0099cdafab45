package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// ErrSyntax is returned for scene files that do not follow the scene format
var ErrSyntax = errors.New("scene syntax error")

// LoadScene reads a scene file. Relative texture paths are resolved against
// the directory containing the scene file.
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return s, nil
}

// ParseScene parses a whitespace-separated scene description:
//
//	eye(3) lookAt(3) up(3) fovy
//	numLights, then per light: position(3) color(3) attenuation(3)
//	numPigments, then per pigment one of:
//	    solid r g b
//	    checker r1 g1 b1 r2 g2 b2 scale
//	    texmap path p0(4) p1(4)
//	numFinishes, then per finish: ka kd ks alpha kr kt ior
//	numObjects, then per object: pigmentIdx finishIdx type params...
//	    sphere center(3) radius
//	    polyhedron n, then n faces of a b c d
//	    triangle v0(3) v1(3) v2(3)
//	    cylinder base(3) axis(3) height radius
//	    cone apex(3) axis(3) height radius
//	    quadric A B C D E F G H I J
//
// The first light is the ambient light. Texture paths that are not absolute
// are resolved against baseDir. The parsed scene is validated before it is
// returned.
func ParseScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	p := newSceneParser(r, baseDir)

	s, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type sceneParser struct {
	scanner *bufio.Scanner
	pos     int // 1-based index of the last token read
	baseDir string
}

func newSceneParser(r io.Reader, baseDir string) *sceneParser {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &sceneParser{scanner: scanner, baseDir: baseDir}
}

func (p *sceneParser) parse() (*scene.Scene, error) {
	camera, err := p.camera()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	s := scene.NewScene(camera)

	numLights, err := p.count("light count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numLights; i++ {
		light, err := p.light()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	numPigments, err := p.count("pigment count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numPigments; i++ {
		pigment, err := p.pigment()
		if err != nil {
			return nil, fmt.Errorf("pigment %d: %w", i, err)
		}
		s.AddPigment(pigment)
	}

	numFinishes, err := p.count("finish count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numFinishes; i++ {
		finish, err := p.finish()
		if err != nil {
			return nil, fmt.Errorf("finish %d: %w", i, err)
		}
		s.AddFinish(finish)
	}

	numObjects, err := p.count("object count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numObjects; i++ {
		obj, err := p.object()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, obj)
	}

	return s, nil
}

func (p *sceneParser) camera() (scene.CameraParams, error) {
	var c scene.CameraParams
	var err error

	if c.Eye, err = p.vec3("eye"); err != nil {
		return c, err
	}
	if c.LookAt, err = p.vec3("look-at point"); err != nil {
		return c, err
	}
	if c.Up, err = p.vec3("up vector"); err != nil {
		return c, err
	}
	c.FovY, err = p.number("field of view")
	return c, err
}

func (p *sceneParser) light() (lights.Light, error) {
	position, err := p.vec3("position")
	if err != nil {
		return lights.Light{}, err
	}
	color, err := p.vec3("color")
	if err != nil {
		return lights.Light{}, err
	}
	attenuation, err := p.vec3("attenuation")
	if err != nil {
		return lights.Light{}, err
	}
	return lights.NewLight(position, color, attenuation), nil
}

func (p *sceneParser) pigment() (material.Pigment, error) {
	kind, err := p.token("pigment type")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "solid":
		color, err := p.vec3("color")
		if err != nil {
			return nil, err
		}
		return material.NewSolidPigment(color), nil

	case "checker":
		color1, err := p.vec3("first color")
		if err != nil {
			return nil, err
		}
		color2, err := p.vec3("second color")
		if err != nil {
			return nil, err
		}
		scale, err := p.number("scale")
		if err != nil {
			return nil, err
		}
		return material.NewCheckerPigment(color1, color2, scale), nil

	case "texmap":
		path, err := p.token("texture path")
		if err != nil {
			return nil, err
		}
		p0, err := p.vec4("s projection")
		if err != nil {
			return nil, err
		}
		p1, err := p.vec4("t projection")
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.baseDir, path)
		}
		texture, err := LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
		return material.NewTexturePigment(texture, p0, p1), nil
	}

	return nil, p.unexpected("pigment type (solid, checker or texmap)", kind)
}

func (p *sceneParser) finish() (material.Finish, error) {
	var v [7]float64
	for i, name := range []string{"ka", "kd", "ks", "alpha", "kr", "kt", "ior"} {
		f, err := p.number(name)
		if err != nil {
			return material.Finish{}, err
		}
		v[i] = f
	}
	return material.Finish{Ka: v[0], Kd: v[1], Ks: v[2], Alpha: v[3], Kr: v[4], Kt: v[5], IOR: v[6]}, nil
}

func (p *sceneParser) object() (scene.Object, error) {
	var obj scene.Object
	var err error

	if obj.PigmentIdx, err = p.integer("pigment index"); err != nil {
		return obj, err
	}
	if obj.FinishIdx, err = p.integer("finish index"); err != nil {
		return obj, err
	}

	kind, err := p.token("object type")
	if err != nil {
		return obj, err
	}

	switch kind {
	case geometry.KindSphere.String():
		center, err := p.vec3("center")
		if err != nil {
			return obj, err
		}
		radius, err := p.number("radius")
		if err != nil {
			return obj, err
		}
		obj.Shape = geometry.NewSphere(center, radius)

	case geometry.KindPolyhedron.String():
		n, err := p.count("face count")
		if err != nil {
			return obj, err
		}
		faces := make([]geometry.Plane, n)
		for i := range faces {
			v, err := p.vec4(fmt.Sprintf("face %d", i))
			if err != nil {
				return obj, err
			}
			faces[i] = geometry.NewPlane(v[0], v[1], v[2], v[3])
		}
		obj.Shape = geometry.NewPolyhedron(faces...)

	case geometry.KindTriangle.String():
		var v [3]core.Vec3
		for i := range v {
			if v[i], err = p.vec3(fmt.Sprintf("vertex %d", i)); err != nil {
				return obj, err
			}
		}
		obj.Shape = geometry.NewTriangle(v[0], v[1], v[2])

	case geometry.KindCylinder.String(), geometry.KindCone.String():
		base, err := p.vec3("base")
		if err != nil {
			return obj, err
		}
		axis, err := p.vec3("axis")
		if err != nil {
			return obj, err
		}
		height, err := p.number("height")
		if err != nil {
			return obj, err
		}
		radius, err := p.number("radius")
		if err != nil {
			return obj, err
		}
		if kind == geometry.KindCylinder.String() {
			obj.Shape = geometry.NewCylinder(base, axis, height, radius)
		} else {
			obj.Shape = geometry.NewCone(base, axis, height, radius)
		}

	case geometry.KindQuadric.String():
		var coeffs [10]float64
		for i := range coeffs {
			if coeffs[i], err = p.number(fmt.Sprintf("coefficient %c", 'A'+i)); err != nil {
				return obj, err
			}
		}
		obj.Shape = geometry.NewQuadric(coeffs)

	default:
		return obj, p.unexpected("object type", kind)
	}

	return obj, nil
}

// token returns the next token or an ErrSyntax naming what was expected
func (p *sceneParser) token(what string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("token %d: unexpected end of input, expected %s: %w", p.pos+1, what, ErrSyntax)
	}
	p.pos++
	return p.scanner.Text(), nil
}

func (p *sceneParser) unexpected(what, got string) error {
	return fmt.Errorf("token %d: expected %s, got %q: %w", p.pos, what, got, ErrSyntax)
}

func (p *sceneParser) number(what string) (float64, error) {
	tok, err := p.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.unexpected(what+" (number)", tok)
	}
	return v, nil
}

func (p *sceneParser) integer(what string) (int, error) {
	tok, err := p.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.unexpected(what+" (integer)", tok)
	}
	return v, nil
}

func (p *sceneParser) count(what string) (int, error) {
	n, err := p.integer(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, p.unexpected(what+" (non-negative)", strconv.Itoa(n))
	}
	return n, nil
}

func (p *sceneParser) vec3(what string) (core.Vec3, error) {
	var v [3]float64
	for i := range v {
		f, err := p.number(what)
		if err != nil {
			return core.Vec3{}, err
		}
		v[i] = f
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func (p *sceneParser) vec4(what string) ([4]float64, error) {
	var v [4]float64
	for i := range v {
		f, err := p.number(what)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
