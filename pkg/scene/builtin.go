package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "One of every primitive with mirror and glass finishes on a checkered floor",
		},
		build: NewDefaultScene,
	},
	"sphere-grid": {
		info: SceneInfo{
			ID:          "sphere-grid",
			DisplayName: "Sphere Grid",
			Description: "10x10 grid of rainbow-colored reflective spheres",
		},
		build: func() *Scene { return NewSphereGridScene(10) },
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by display name
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].DisplayName < infos[j].DisplayName
	})
	return infos
}

// NewBuiltinScene builds the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, error) {
	b, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q", id)
	}
	return b.build(), nil
}
