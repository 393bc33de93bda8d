package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// ErrNegativeIntensity means a light intensity is negative, NaN or infinite
var ErrNegativeIntensity = errors.New("light intensity must be finite and non-negative")

// PointLight emits equally in all directions from a single position
type PointLight struct {
	Position  core.Point
	Intensity float64
}

// NewPointLight creates a point light
func NewPointLight(position core.Point, intensity float64) (*PointLight, error) {
	if !(intensity >= 0) || math.IsInf(intensity, 1) {
		return nil, fmt.Errorf("point light intensity %g: %w", intensity, ErrNegativeIntensity)
	}
	return &PointLight{Position: position, Intensity: intensity}, nil
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// DirectionFrom returns the unit vector from point toward the light.
// A point at the light's position has no direction.
func (pl *PointLight) DirectionFrom(point core.Point) (core.Vec3, error) {
	dir, err := pl.Position.Subtract(point).Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("light direction at %v: %w", point, err)
	}
	return dir, nil
}

func (pl *PointLight) GetIntensity() float64 {
	return pl.Intensity
}
