package scene

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// NewDefaultScene creates the classic single-sphere scene: a white sphere
// slightly behind the origin lit from the upper right
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, -1),
		LookUp:   core.NewVec3(0, 1, 0),
		FOV:      35,
		Width:    500,
		Height:   500,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 1.2, core.NewColor(1, 1, 1))
	if err != nil {
		return nil, err
	}
	light, err := lights.NewPointLight(core.NewVec3(1, 1, 1.5), 1.0)
	if err != nil {
		return nil, err
	}

	return NewScene(cameraConfig, []geometry.Geometry{sphere}, []lights.Light{light})
}

// NewReferenceScene creates a unit sphere at the origin viewed head-on from
// (0,0,5) with the light next to the camera
func NewReferenceScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1))
	if err != nil {
		return nil, err
	}
	light, err := lights.NewPointLight(core.NewVec3(0.5, 0.5, 2), 1.0)
	if err != nil {
		return nil, err
	}

	return NewScene(cameraConfig, []geometry.Geometry{sphere}, []lights.Light{light})
}

// NewShowcaseScene exercises every geometry variant: a sphere, a box, a
// sphere-box union and a ground plane under a key and a fill light
func NewShowcaseScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Position: core.NewVec3(0, 1, 6),
		LookAt:   core.NewVec3(0, -0.15, -1),
		LookUp:   core.NewVec3(0, 1, 0),
		FOV:      45,
		Width:    400,
		Height:   225,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	center, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(0.9, 0.3, 0.25))
	if err != nil {
		return nil, err
	}
	box, err := geometry.NewBox(core.NewVec3(-2.3, -0.4, -0.5), core.NewVec3(0.6, 0.6, 0.6), core.NewColor(0.25, 0.45, 0.9))
	if err != nil {
		return nil, err
	}

	pedestal, err := geometry.NewBox(core.NewVec3(2.3, -0.7, -0.5), core.NewVec3(0.5, 0.3, 0.5), core.NewColor(0.85, 0.85, 0.8))
	if err != nil {
		return nil, err
	}
	ball, err := geometry.NewSphere(core.NewVec3(2.3, 0, -0.5), 0.45, core.NewColor(0.95, 0.8, 0.2))
	if err != nil {
		return nil, err
	}
	statue, err := geometry.NewUnion(pedestal, ball)
	if err != nil {
		return nil, err
	}

	ground, err := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewColor(0.6, 0.6, 0.6))
	if err != nil {
		return nil, err
	}

	key, err := lights.NewPointLight(core.NewVec3(3, 5, 4), 1.0)
	if err != nil {
		return nil, err
	}
	fill, err := lights.NewPointLight(core.NewVec3(-4, 2, 3), 0.35)
	if err != nil {
		return nil, err
	}

	return NewScene(cameraConfig,
		[]geometry.Geometry{center, box, statue, ground},
		[]lights.Light{key, fill})
}
