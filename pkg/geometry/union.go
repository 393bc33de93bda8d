package geometry

import (
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Union is the boolean union of its children
type Union struct {
	Base
	Children []Geometry
}

// NewUnion creates a union. Its position and color default to the first child's.
func NewUnion(children ...Geometry) (*Union, error) {
	if len(children) == 0 {
		return nil, ErrEmptyUnion
	}
	first := children[0]
	return &Union{
		Base:     NewBase(first.GetPosition(), first.GetColor()),
		Children: append([]Geometry(nil), children...),
	}, nil
}

// closest returns the visible child nearest to p and its distance. With no
// visible child it returns nil and +Inf.
func (u *Union) closest(p core.Point) (Geometry, float64) {
	var best Geometry
	bestDist := math.Inf(1)
	for _, child := range u.Children {
		if !child.IsVisible() {
			continue
		}
		if d := child.Map(p); best == nil || d < bestDist {
			best, bestDist = child, d
		}
	}
	return best, bestDist
}

// Map returns the minimum distance over all visible children
func (u *Union) Map(p core.Point) float64 {
	_, d := u.closest(p)
	return d
}

// Normal estimates the normal of the combined field near p
func (u *Union) Normal(p core.Point) (core.Vec3, error) {
	return EstimateNormal(u, p, NormalEpsilon)
}

// ColorAt returns the color of the child whose surface is nearest p
func (u *Union) ColorAt(p core.Point) core.Color {
	child, _ := u.closest(p)
	if child == nil {
		return u.Color
	}
	return SurfaceColor(child, p)
}

// Equal reports whether other is a union of pairwise-equal children
func (u *Union) Equal(other Geometry) bool {
	o, ok := other.(*Union)
	if !ok || o == nil || len(o.Children) != len(u.Children) {
		return false
	}
	for i := range u.Children {
		if !u.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
