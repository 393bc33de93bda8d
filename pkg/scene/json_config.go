package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

var (
	// ErrUnknownGeometry means a scene file named a geometry type that does not exist
	ErrUnknownGeometry = errors.New("unknown geometry type")
	// ErrTrailingData means a scene file holds more than one JSON value
	ErrTrailingData = errors.New("unexpected data after scene description")
)

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// RGBCfg is a JSON [r, g, b] color with channels in [0, 255]
type RGBCfg [3]float64

func (c RGBCfg) color() core.Color {
	return core.NewColor(c[0]/255.0, c[1]/255.0, c[2]/255.0)
}

// CameraCfg describes the camera. Omitted fields keep their defaults.
type CameraCfg struct {
	Position *Vec3Cfg `json:"position,omitempty"`
	LookAt   *Vec3Cfg `json:"lookAt,omitempty"`
	LookUp   *Vec3Cfg `json:"lookUp,omitempty"`
	FOV      float64  `json:"fov,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
}

// GeometryCfg describes one geometry. Which fields apply depends on Type:
// "sphere" uses center and radius, "plane" uses point and normal, "box"
// uses center and size (half-extents), "union" uses children.
type GeometryCfg struct {
	Type     string        `json:"type"`
	Center   Vec3Cfg       `json:"center,omitempty"`
	Radius   float64       `json:"radius,omitempty"`
	Point    Vec3Cfg       `json:"point,omitempty"`
	Normal   Vec3Cfg       `json:"normal,omitempty"`
	Size     Vec3Cfg       `json:"size,omitempty"`
	Children []GeometryCfg `json:"children,omitempty"`
	Color    *RGBCfg       `json:"color,omitempty"`   // defaults to the parent union's color, then white
	Visible  *bool         `json:"visible,omitempty"` // defaults to true
}

// LightCfg describes a point light
type LightCfg struct {
	Position  Vec3Cfg  `json:"position"`
	Intensity *float64 `json:"intensity,omitempty"` // defaults to 1
}

// Config is the on-disk scene description
type Config struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Camera      CameraCfg     `json:"camera"`
	Geometries  []GeometryCfg `json:"geometries"`
	Lights      []LightCfg    `json:"lights"`
}

// LoadFile reads a JSON scene description from path. Camera overrides are
// applied on top of the file's camera.
func LoadFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := cfg.Build(cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadJSON decodes a JSON scene description and builds a validated scene
func LoadJSON(r io.Reader) (*Scene, error) {
	cfg, err := DecodeConfig(r)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// DecodeConfig decodes a JSON scene description without building it.
// Unknown fields and anything after the first JSON value are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode scene: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Config{}, ErrTrailingData
	}
	return cfg, nil
}

// Build turns the description into a scene
func (cfg Config) Build(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := cfg.Camera.build()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	geometries := make([]geometry.Geometry, 0, len(cfg.Geometries))
	for i, gc := range cfg.Geometries {
		g, err := gc.build(core.NewColor(1, 1, 1))
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		geometries = append(geometries, g)
	}

	sceneLights := make([]lights.Light, 0, len(cfg.Lights))
	for i, lc := range cfg.Lights {
		intensity := 1.0
		if lc.Intensity != nil {
			intensity = *lc.Intensity
		}
		light, err := lights.NewPointLight(lc.Position.vec(), intensity)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sceneLights = append(sceneLights, light)
	}

	return NewScene(cameraConfig, geometries, sceneLights)
}

func (cc CameraCfg) build() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if cc.Position != nil {
		config.Position = cc.Position.vec()
	}
	if cc.LookAt != nil {
		config.LookAt = cc.LookAt.vec()
	}
	if cc.LookUp != nil {
		config.LookUp = cc.LookUp.vec()
	}
	if cc.FOV != 0 {
		config.FOV = cc.FOV
	}
	if cc.Width != 0 {
		config.Width = cc.Width
	}
	if cc.Height != 0 {
		config.Height = cc.Height
	}
	return config
}

func (gc GeometryCfg) build(defaultColor core.Color) (geometry.Geometry, error) {
	color := defaultColor
	if gc.Color != nil {
		color = gc.Color.color()
	}

	var g geometry.Geometry
	switch gc.Type {
	case "sphere":
		s, err := geometry.NewSphere(gc.Center.vec(), gc.Radius, color)
		if err != nil {
			return nil, err
		}
		if gc.Visible != nil {
			s.Visible = *gc.Visible
		}
		g = s
	case "plane":
		p, err := geometry.NewPlane(gc.Point.vec(), gc.Normal.vec(), color)
		if err != nil {
			return nil, err
		}
		if gc.Visible != nil {
			p.Visible = *gc.Visible
		}
		g = p
	case "box":
		b, err := geometry.NewBox(gc.Center.vec(), gc.Size.vec(), color)
		if err != nil {
			return nil, err
		}
		if gc.Visible != nil {
			b.Visible = *gc.Visible
		}
		g = b
	case "union":
		children := make([]geometry.Geometry, 0, len(gc.Children))
		for i, cc := range gc.Children {
			child, err := cc.build(color)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, child)
		}
		u, err := geometry.NewUnion(children...)
		if err != nil {
			return nil, err
		}
		if gc.Color != nil {
			u.Color = color
		}
		if gc.Visible != nil {
			u.Visible = *gc.Visible
		}
		g = u
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGeometry, gc.Type)
	}
	return g, nil
}
