package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// NormalEpsilon is the finite-difference offset used for normal estimation
const NormalEpsilon = 0.001

// degenerateGradient scales eps into the smallest gradient length accepted as a slope
const degenerateGradient = 1e-9

var (
	// ErrDegenerateNormal means the distance field has no gradient at the sample point
	ErrDegenerateNormal = errors.New("distance field gradient is zero")
	// ErrInvalidRadius means a sphere radius is not positive and finite
	ErrInvalidRadius = errors.New("radius must be positive and finite")
	// ErrInvalidSize means a box half-extent is not positive and finite
	ErrInvalidSize = errors.New("box half-extents must be positive and finite")
	// ErrEmptyUnion means a union was constructed without children
	ErrEmptyUnion = errors.New("union needs at least one child")
)

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// EstimateNormal approximates the gradient of sdf at p with central differences
func EstimateNormal(sdf SDF, p core.Point, eps float64) (core.Vec3, error) {
	dx := core.NewVec3(eps, 0, 0)
	dy := core.NewVec3(0, eps, 0)
	dz := core.NewVec3(0, 0, eps)

	gradient := core.NewVec3(
		sdf.Map(p.Add(dx))-sdf.Map(p.Subtract(dx)),
		sdf.Map(p.Add(dy))-sdf.Map(p.Subtract(dy)),
		sdf.Map(p.Add(dz))-sdf.Map(p.Subtract(dz)),
	)

	if !(gradient.Length() >= degenerateGradient*eps) {
		return core.Vec3{}, fmt.Errorf("%w at %v", ErrDegenerateNormal, p)
	}
	normal, err := gradient.Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("%w at %v", ErrDegenerateNormal, p)
	}
	return normal, nil
}
