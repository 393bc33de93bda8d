package renderer

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
)

// HitPoint is the outcome of marching one ray against one geometry.
// Point, Distance and Geometry are meaningful only when Hit is true.
type HitPoint struct {
	Hit      bool
	Point    core.Point        // World-space location of the hit
	Distance float64           // Distance travelled along the ray
	Geometry geometry.Geometry // Geometry that was hit (not owned)

	normal    core.Vec3
	normalErr error
	hasNormal bool
}

// Miss returns a non-hit result
func Miss() HitPoint {
	return HitPoint{}
}

// NewHit creates a hit result
func NewHit(point core.Point, distance float64, g geometry.Geometry) HitPoint {
	return HitPoint{Hit: true, Point: point, Distance: distance, Geometry: g}
}

// Normal returns the surface normal at the hit point, computing it on first use
func (h *HitPoint) Normal() (core.Vec3, error) {
	if !h.hasNormal {
		h.normal, h.normalErr = h.Geometry.Normal(h.Point)
		h.hasNormal = true
	}
	return h.normal, h.normalErr
}

// Less orders hit points by distance along the ray
func (h HitPoint) Less(other HitPoint) bool {
	return h.Distance < other.Distance
}

// Closest returns the nearest hit, ignoring misses.
// On an exact tie the earlier entry wins.
func Closest(hits []HitPoint) (HitPoint, bool) {
	var best HitPoint
	found := false
	for _, h := range hits {
		if !h.Hit {
			continue
		}
		if !found || h.Less(best) {
			best = h
			found = true
		}
	}
	return best, found
}
