package renderer

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// PixelBuffer is the finished render: Width*Height colors in row-major order
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []core.RGB8
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.RGB8, width*height),
	}
}

// Index returns the position of pixel (x, y) in Pixels
func (b *PixelBuffer) Index(x, y int) int {
	return y*b.Width + x
}

// At returns the color of pixel (x, y)
func (b *PixelBuffer) At(x, y int) core.RGB8 {
	return b.Pixels[b.Index(x, y)]
}

// Set stores the color of pixel (x, y)
func (b *PixelBuffer) Set(x, y int, c core.RGB8) {
	b.Pixels[b.Index(x, y)] = c
}

// Len returns the number of pixels
func (b *PixelBuffer) Len() int {
	return len(b.Pixels)
}
