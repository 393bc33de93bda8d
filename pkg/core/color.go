package core

import "math"

// Color is an RGB triple with channels in [0, 1]
type Color = Vec3

// RGB8 is an output pixel with channels in [0, 255]
type RGB8 struct {
	R, G, B uint8
}

// NewColor builds a color from [0, 1] channels
func NewColor(r, g, b float64) Color {
	return Vec3{X: r, Y: g, Z: b}
}

// NewColor8 builds a color from [0, 255] channels
func NewColor8(r, g, b uint8) Color {
	return Vec3{X: float64(r) / 255.0, Y: float64(g) / 255.0, Z: float64(b) / 255.0}
}

// ToRGB8 clamps a color to [0, 1] and rounds each channel to [0, 255]
func ToRGB8(c Color) RGB8 {
	c = c.Clamp(0.0, 1.0)
	return RGB8{
		R: uint8(math.Round(c.X * 255)),
		G: uint8(math.Round(c.Y * 255)),
		B: uint8(math.Round(c.Z * 255)),
	}
}
