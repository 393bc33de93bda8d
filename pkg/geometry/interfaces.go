package geometry

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// SDF is a signed distance field: negative inside, zero on the surface, positive outside
type SDF interface {
	Map(p core.Point) float64
}

// Geometry is an implicit surface that the raymarcher can trace and shade.
// Implementations must be safe for concurrent reads once constructed.
type Geometry interface {
	SDF
	Normal(p core.Point) (core.Vec3, error)
	GetPosition() core.Point
	GetColor() core.Color
	IsVisible() bool
	Equal(other Geometry) bool
}

// SurfaceColorer is implemented by geometries whose color varies over the surface
type SurfaceColorer interface {
	ColorAt(p core.Point) core.Color
}

// SurfaceColor returns the shading color of g at p
func SurfaceColor(g Geometry, p core.Point) core.Color {
	if colorer, ok := g.(SurfaceColorer); ok {
		return colorer.ColorAt(p)
	}
	return g.GetColor()
}

// Base holds the attributes shared by every geometry
type Base struct {
	Position core.Point // World-space anchor (center for solids)
	Color    core.Color // Shading color, channels in [0, 1]
	Visible  bool       // Invisible geometry is skipped by the raymarcher
}

// NewBase creates visible base attributes
func NewBase(position core.Point, color core.Color) Base {
	return Base{Position: position, Color: color, Visible: true}
}

func (b Base) GetPosition() core.Point { return b.Position }
func (b Base) GetColor() core.Color    { return b.Color }
func (b Base) IsVisible() bool         { return b.Visible }
