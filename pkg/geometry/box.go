package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Box represents an axis-aligned box
type Box struct {
	Base
	Size core.Vec3 // Half-extents along each axis, so (1,1,1) is a 2x2x2 box
}

// NewBox creates a new axis-aligned box around center
func NewBox(center, size core.Vec3, color core.Color) (*Box, error) {
	if !(positiveFinite(size.X) && positiveFinite(size.Y) && positiveFinite(size.Z)) {
		return nil, fmt.Errorf("box size %v: %w", size, ErrInvalidSize)
	}
	return &Box{
		Base: NewBase(center, color),
		Size: size,
	}, nil
}

// Map returns the exact signed distance to the box
func (b *Box) Map(p core.Point) float64 {
	q := p.Subtract(b.Position).Abs().Subtract(b.Size)
	outside := core.NewVec3(math.Max(q.X, 0), math.Max(q.Y, 0), math.Max(q.Z, 0)).Length()
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside + inside
}

// Normal estimates the box normal near p
func (b *Box) Normal(p core.Point) (core.Vec3, error) {
	return EstimateNormal(b, p, NormalEpsilon)
}

// Equal reports whether other is a box with the same center and size
func (b *Box) Equal(other Geometry) bool {
	o, ok := other.(*Box)
	if !ok || o == nil {
		return false
	}
	return b.Position == o.Position && b.Size == o.Size
}
