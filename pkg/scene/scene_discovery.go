package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
}

type sceneEntry struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info:    SceneInfo{ID: "default", DisplayName: "Default", Description: "Three diffuse spheres over a ground plane"},
		factory: NewDefaultScene,
	},
	"cornell": {
		info:    SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Colored walls, a mirror sphere and a glass sphere"},
		factory: NewCornellScene,
	},
	"mirrors": {
		info:    SceneInfo{ID: "mirrors", DisplayName: "Facing Mirrors", Description: "Camera between two parallel mirrors"},
		factory: NewMirrorScene,
	},
	"glass": {
		info:    SceneInfo{ID: "glass", DisplayName: "Glass", Description: "Refractive sphere over a checkerboard floor"},
		factory: NewGlassScene,
	},
	"textured": {
		info:    SceneInfo{ID: "textured", DisplayName: "Textures", Description: "Texture mapping on spheres and planes"},
		factory: func() *Scene { return NewTextureTestScene(nil) },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// Create builds a fresh instance of a built-in scene
func Create(id string) (*Scene, error) {
	entry, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return entry.factory(), nil
}
