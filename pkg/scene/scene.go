package scene

import (
	"errors"

	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

var (
	// ErrNoCamera means a scene was built without a camera
	ErrNoCamera = errors.New("scene needs a camera")
	// ErrNoLights means a scene was built without any light
	ErrNoLights = errors.New("scene needs at least one light")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	Geometries   []geometry.Geometry // Objects in the scene, order only breaks ties
	Lights       []lights.Light      // Lights in the scene
}

// NewScene validates and assembles a scene. An empty geometry list is valid
// and renders as flat background.
func NewScene(cameraConfig renderer.CameraConfig, geometries []geometry.Geometry, sceneLights []lights.Light) (*Scene, error) {
	if len(sceneLights) == 0 {
		return nil, ErrNoLights
	}
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Geometries:   append([]geometry.Geometry(nil), geometries...),
		Lights:       append([]lights.Light(nil), sceneLights...),
	}, nil
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetGeometries implements renderer.Scene
func (s *Scene) GetGeometries() []geometry.Geometry {
	return s.Geometries
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// Validate checks the invariants a scene must hold before rendering
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if len(s.Lights) == 0 {
		return ErrNoLights
	}
	return nil
}

// GetPrimitiveCount returns the number of geometries, counting union children
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.Geometries)
}

func countPrimitives(geometries []geometry.Geometry) int {
	count := 0
	for _, g := range geometries {
		if union, ok := g.(*geometry.Union); ok {
			count += countPrimitives(union.Children)
		} else {
			count++
		}
	}
	return count
}
