package lights

import "github.com/df07/go-sdf-raymarcher/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for objects that contribute direct lighting
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit direction FROM the shading point TO the light
	DirectionFrom(point core.Point) (core.Vec3, error)

	// GetIntensity returns the scalar intensity multiplier (>= 0)
	GetIntensity() float64
}
