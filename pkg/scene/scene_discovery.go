package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by ByName for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by ByName
	DisplayName string // Human readable name
	Description string
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:  SceneInfo{Description: "Diffuse and mirror spheres on a green ground sphere"},
		build: NewDefaultScene,
	},
	"empty": {
		info:  SceneInfo{Description: "No geometry, only the sky"},
		build: NewEmptyScene,
	},
	"spheregrid": {
		info:  SceneInfo{Description: "Rows of colored diffuse and mirror spheres"},
		build: NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, s := range builtinScenes {
		info := s.info
		info.ID = id
		info.DisplayName = titleCase(id)
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ByName builds the built-in scene registered under name
func ByName(name string) (*Scene, error) {
	s, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s.build()
}

// titleCase converts "sphere-grid" or "sphere_grid" to "Sphere Grid"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
