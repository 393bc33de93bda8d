package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Base
	Up core.Vec3 // Unit normal; the positive half-space is outside
}

// NewPlane creates a new plane through point with the given normal
func NewPlane(point, normal core.Vec3, color core.Color) (*Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w", err)
	}
	return &Plane{
		Base: NewBase(point, color),
		Up:   n,
	}, nil
}

// Map returns the signed height of p above the plane
func (pl *Plane) Map(p core.Point) float64 {
	return p.Subtract(pl.Position).Dot(pl.Up)
}

// Normal estimates the plane normal near p
func (pl *Plane) Normal(p core.Point) (core.Vec3, error) {
	return EstimateNormal(pl, p, NormalEpsilon)
}

// Equal reports whether other is a plane with the same point and normal
func (pl *Plane) Equal(other Geometry) bool {
	o, ok := other.(*Plane)
	if !ok || o == nil {
		return false
	}
	return pl.Position == o.Position && pl.Up == o.Up
}
