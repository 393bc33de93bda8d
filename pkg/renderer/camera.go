package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

var (
	// ErrCameraNotInitialized is the panic value when rays are requested before Init
	ErrCameraNotInitialized = errors.New("camera geometry not initialized")
	// ErrDegenerateBasis means look-at and look-up are parallel
	ErrDegenerateBasis = errors.New("camera look-at and look-up are parallel")
	// ErrInvalidResolution means width or height is not positive
	ErrInvalidResolution = errors.New("camera resolution must be positive")
	// ErrInvalidFOV means the field of view is outside (0, 180) degrees
	ErrInvalidFOV = errors.New("camera field of view must be in (0, 180) degrees")
)

// degenerateCrossLength is the smallest |lookAt x lookUp| accepted as a valid basis
const degenerateCrossLength = 1e-9

// CameraConfig contains the primary camera parameters
type CameraConfig struct {
	Position core.Point // Camera origin
	LookAt   core.Vec3  // Viewing direction (not a target point)
	LookUp   core.Vec3  // Up direction
	FOV      float64    // Vertical field of view in degrees
	Width    int        // Image width in pixels
	Height   int        // Image height in pixels
}

// DefaultCameraConfig returns a camera at (0,0,5) looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, -1),
		LookUp:   core.NewVec3(0, 1, 0),
		FOV:      45,
		Width:    250,
		Height:   250,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.LookUp != (core.Vec3{}) {
		result.LookUp = override.LookUp
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Camera generates one primary ray per pixel through an image plane one unit
// in front of the camera position
type Camera struct {
	config CameraConfig

	// Derived by Init
	initialized   bool
	lookAt        core.Vec3
	lookUp        core.Vec3
	lookRight     core.Vec3
	aspectRatio   float64
	planeHeight   float64
	planeWidth    float64
	pixelSize     float64
	halfPixelSize float64
	planeTopLeft  core.Vec3
}

// NewCamera creates a camera. Init must succeed before rays are generated.
func NewCamera(config CameraConfig) *Camera {
	return &Camera{config: config}
}

// Init computes the image-plane geometry from the primary parameters.
// It always starts from the config, so calling it again is safe.
func (c *Camera) Init() error {
	c.initialized = false
	cfg := c.config

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrInvalidResolution)
	}
	if !(cfg.FOV > 0 && cfg.FOV < 180) {
		return fmt.Errorf("%g: %w", cfg.FOV, ErrInvalidFOV)
	}

	lookAt, err := cfg.LookAt.Normalize()
	if err != nil {
		return fmt.Errorf("camera look-at: %w", err)
	}
	lookUp, err := cfg.LookUp.Normalize()
	if err != nil {
		return fmt.Errorf("camera look-up: %w", err)
	}

	right := lookAt.Cross(lookUp)
	if right.Length() < degenerateCrossLength {
		return fmt.Errorf("look-at %v, look-up %v: %w", lookAt, lookUp, ErrDegenerateBasis)
	}

	c.lookAt = lookAt
	c.lookUp = lookUp
	c.lookRight = right
	c.aspectRatio = float64(cfg.Width) / float64(cfg.Height)
	c.planeHeight = 2 * math.Tan(cfg.FOV*0.5*math.Pi/180)
	c.planeWidth = c.planeHeight * c.aspectRatio
	c.pixelSize = c.planeHeight / float64(cfg.Height)
	c.halfPixelSize = c.pixelSize / 2

	// Top-left corner of the image plane, relative to the camera position
	c.planeTopLeft = lookAt.
		Add(lookUp.Multiply(c.planeHeight / 2)).
		Subtract(right.Multiply(c.planeWidth / 2))

	c.initialized = true
	return nil
}

// Initialized reports whether Init has succeeded
func (c *Camera) Initialized() bool {
	return c.initialized
}

// RayDirection returns the unit direction through the center of pixel (x, y).
// x counts columns from the left, y counts rows from the top.
func (c *Camera) RayDirection(x, y int) core.Vec3 {
	if !c.initialized {
		panic(ErrCameraNotInitialized)
	}
	dir := c.planeTopLeft.
		Add(c.lookRight.Multiply(float64(x)*c.pixelSize + c.halfPixelSize)).
		Subtract(c.lookUp.Multiply(float64(y)*c.pixelSize + c.halfPixelSize))
	return dir.MustNormalize()
}

// GetRay returns the primary ray for pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return core.NewRay(c.config.Position, c.RayDirection(x, y))
}

// GetConfig returns the primary camera parameters
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// GetPosition returns the camera origin
func (c *Camera) GetPosition() core.Point {
	return c.config.Position
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// LookRight returns the derived right vector. Zero before Init.
func (c *Camera) LookRight() core.Vec3 {
	return c.lookRight
}

// PixelSize returns the world-space size of a pixel on the image plane. Zero before Init.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}
