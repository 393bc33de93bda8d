package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

// ToImage copies a pixel buffer into an opaque RGBA image
func ToImage(buffer *renderer.PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			p := buffer.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// FromImage converts an image back into a pixel buffer, dropping alpha
func FromImage(img image.Image) *renderer.PixelBuffer {
	bounds := img.Bounds()
	buffer := renderer.NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			c := color.RGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.RGBA)
			buffer.Set(x, y, core.RGB8{R: c.R, G: c.G, B: c.B})
		}
	}
	return buffer
}

// Encode writes the buffer to w as PNG
func Encode(w io.Writer, buffer *renderer.PixelBuffer) error {
	if err := png.Encode(w, ToImage(buffer)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the buffer to path, creating parent directories as needed
func SavePNG(path string, buffer *renderer.PixelBuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, ToImage(buffer)); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// LoadPNG reads a PNG written by SavePNG back into a pixel buffer
func LoadPNG(path string) (*renderer.PixelBuffer, error) {
	img, err := gg.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load PNG: %w", err)
	}
	return FromImage(img), nil
}
