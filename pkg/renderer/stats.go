package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RunID        string        // Unique identifier of the render
	TotalPixels  int           // Total number of pixels rendered
	HitPixels    int           // Pixels whose ray hit a geometry
	MissPixels   int           // Pixels shaded with the background
	TotalSteps   int           // March steps summed over every pixel and geometry
	AverageSteps float64       // Average march steps per pixel
	MaxStepsUsed int           // Most march steps spent on a single pixel
	Duration     time.Duration // Wall time of the render
}

// PixelStats records the march work done for a single pixel
type PixelStats struct {
	Hit   bool // Whether any geometry was hit
	Steps int  // March steps summed over all geometries
}

// AddPixel folds one pixel's statistics into the totals
func (rs *RenderStats) AddPixel(ps PixelStats) {
	rs.TotalPixels++
	if ps.Hit {
		rs.HitPixels++
	} else {
		rs.MissPixels++
	}
	rs.TotalSteps += ps.Steps
	rs.MaxStepsUsed = max(rs.MaxStepsUsed, ps.Steps)
}

// Merge folds another set of statistics into the totals
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.MissPixels += other.MissPixels
	rs.TotalSteps += other.TotalSteps
	rs.MaxStepsUsed = max(rs.MaxStepsUsed, other.MaxStepsUsed)
}

// Finalize calculates derived statistics after all pixels are rendered
func (rs *RenderStats) Finalize() {
	if rs.TotalPixels == 0 {
		rs.AverageSteps = 0
		return
	}
	rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
}
