package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Base
	Radius float64
}

// NewSphere creates a new visible sphere
func NewSphere(center core.Point, radius float64, color core.Color) (*Sphere, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrInvalidRadius)
	}
	return &Sphere{
		Base:   NewBase(center, color),
		Radius: radius,
	}, nil
}

// Map returns the signed distance from p to the sphere surface
func (s *Sphere) Map(p core.Point) float64 {
	return p.Subtract(s.Position).Length() - s.Radius
}

// Normal estimates the outward surface normal near p
func (s *Sphere) Normal(p core.Point) (core.Vec3, error) {
	return EstimateNormal(s, p, NormalEpsilon)
}

// Equal reports whether other is a sphere with the same center and radius
func (s *Sphere) Equal(other Geometry) bool {
	o, ok := other.(*Sphere)
	if !ok || o == nil {
		return false
	}
	return s.Position == o.Position && s.Radius == o.Radius
}
