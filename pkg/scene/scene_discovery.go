package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// ErrUnknownScene means a scene name matched neither a built-in nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

type builtinScene struct {
	info   SceneInfo
	create func(...renderer.CameraConfig) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Single white sphere lit from the upper right",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "reference",
			DisplayName: "Reference Scene",
			Description: "Unit sphere at the origin seen head-on",
			Type:        "builtin",
		},
		create: NewReferenceScene,
	},
	{
		info: SceneInfo{
			ID:          "showcase",
			DisplayName: "Showcase",
			Description: "Sphere, box, union and ground plane under two lights",
			Type:        "builtin",
		},
		create: NewShowcaseScene,
	},
}

// BuiltinScenes lists the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// FindScenesDir returns the first existing scenes directory, or "" if none exists
func FindScenesDir() string {
	possiblePaths := []string{"scenes", "../scenes"}
	for _, path := range possiblePaths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListJSONScenes scans dir for *.json scene files. A missing directory yields
// an empty list. Files that fail to decode are skipped.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseJSONMetadata(filePath)
		if err != nil {
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseJSONMetadata reads the name and description of a scene file. The ID is
// the file name without extension; the display name falls back to a
// title-cased ID.
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return SceneInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return SceneInfo{}, fmt.Errorf("%s: %w", filePath, err)
	}

	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:          id,
		DisplayName: cfg.Name,
		Description: cfg.Description,
		Type:        "json",
		FilePath:    filePath,
	}
	if info.DisplayName == "" {
		info.DisplayName = titleCase(id)
	}
	return info, nil
}

// ListScenes returns the built-in scenes followed by the scene files found in dir
func ListScenes(dir string) ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(BuiltinScenes(), jsonScenes...), nil
}

// Create builds the scene called name. name is a built-in ID, the ID of a
// scene file in dir, or a path to a .json file.
func Create(name, dir string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.create(cameraOverrides...)
		}
	}

	if strings.HasSuffix(name, ".json") {
		return LoadFile(name, cameraOverrides...)
	}

	if dir != "" {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path, cameraOverrides...)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// titleCase converts a filename-style string to title case
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
