package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
)

var (
	// ErrNoCamera means the scene has no camera to render from
	ErrNoCamera = errors.New("scene has no camera")
	// ErrInvalidMarchConfig means a march budget or threshold is not positive
	ErrInvalidMarchConfig = errors.New("invalid march configuration")
)

// MarchConfig contains the per-instance sphere tracing parameters
type MarchConfig struct {
	MaxSteps    int        // Step budget per ray and geometry
	MaxDistance float64    // Rays travelling further than this miss
	Epsilon     float64    // Distances below this count as a hit
	NumWorkers  int        // Parallel row workers (0 = use CPU count, 1 = sequential)
	Background  core.Color // Color of pixels that hit nothing
}

// DefaultMarchConfig returns sensible default values
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MaxSteps:    1000,
		MaxDistance: 100,
		Epsilon:     0.001,
		NumWorkers:  0,
		Background:  core.NewColor8(50, 50, 50),
	}
}

// Validate checks that the march budgets are usable
func (mc MarchConfig) Validate() error {
	if mc.MaxSteps <= 0 {
		return fmt.Errorf("%w: max steps %d", ErrInvalidMarchConfig, mc.MaxSteps)
	}
	if !(mc.MaxDistance > 0) {
		return fmt.Errorf("%w: max distance %g", ErrInvalidMarchConfig, mc.MaxDistance)
	}
	if !(mc.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon %g", ErrInvalidMarchConfig, mc.Epsilon)
	}
	if mc.NumWorkers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidMarchConfig, mc.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetGeometries() []geometry.Geometry
	GetLights() []lights.Light
}

// Raymarcher renders a scene by sphere tracing one primary ray per pixel
type Raymarcher struct {
	scene  Scene
	config MarchConfig
	logger core.Logger
}

// NewRaymarcher creates a new raymarcher. A nil logger discards output.
func NewRaymarcher(scene Scene, config MarchConfig, logger core.Logger) *Raymarcher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raymarcher{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// SetMarchConfig replaces the march configuration
func (rm *Raymarcher) SetMarchConfig(config MarchConfig) {
	rm.config = config
}

// GetMarchConfig returns the march configuration
func (rm *Raymarcher) GetMarchConfig() MarchConfig {
	return rm.config
}

// March sphere-traces ray against a single geometry. It returns the hit (or
// miss) and the number of distance evaluations spent.
func (rm *Raymarcher) March(ray core.Ray, g geometry.Geometry) (HitPoint, int) {
	totalDistance := 0.0
	for steps := 0; steps < rm.config.MaxSteps; steps++ {
		point := ray.At(totalDistance)
		distance := g.Map(point)

		if distance < rm.config.Epsilon {
			return NewHit(point, totalDistance, g), steps + 1
		}
		if totalDistance > rm.config.MaxDistance {
			return Miss(), steps + 1
		}
		totalDistance += distance
	}
	// Step budget exhausted
	return Miss(), rm.config.MaxSteps
}

// ComputePixelColor marches the ray for pixel (x, y) against every visible
// geometry and shades the closest hit
func (rm *Raymarcher) ComputePixelColor(x, y int) (core.RGB8, PixelStats, error) {
	ray := rm.scene.GetCamera().GetRay(x, y)

	var stats PixelStats
	hits := make([]HitPoint, 0, 1)
	for _, g := range rm.scene.GetGeometries() {
		if !g.IsVisible() {
			continue
		}
		hit, steps := rm.March(ray, g)
		stats.Steps += steps
		if hit.Hit {
			hits = append(hits, hit)
		}
	}

	closest, ok := Closest(hits)
	if !ok {
		return core.ToRGB8(rm.config.Background), stats, nil
	}
	stats.Hit = true

	color, err := rm.ComputeShading(&closest)
	if err != nil {
		return core.RGB8{}, stats, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
	}
	return core.ToRGB8(color), stats, nil
}

// ComputeShading returns the Lambertian color of a hit. Each light's
// attenuation dot(normal, toLight)*intensity is clamped to [0, 1], and so is
// their sum.
func (rm *Raymarcher) ComputeShading(hp *HitPoint) (core.Color, error) {
	normal, err := hp.Normal()
	if err != nil {
		return core.Color{}, fmt.Errorf("shading normal: %w", err)
	}

	attenuation := 0.0
	for _, light := range rm.scene.GetLights() {
		toLight, err := light.DirectionFrom(hp.Point)
		if err != nil {
			return core.Color{}, fmt.Errorf("shading light: %w", err)
		}
		contribution := normal.Dot(toLight) * light.GetIntensity()
		attenuation += max(0, min(1, contribution))
	}
	attenuation = min(1, attenuation)

	base := geometry.SurfaceColor(hp.Geometry, hp.Point)
	return base.Multiply(attenuation).Clamp(0, 1), nil
}

// RenderRow renders every pixel of one row into buffer
func (rm *Raymarcher) RenderRow(row int, buffer *PixelBuffer) (RenderStats, error) {
	var stats RenderStats
	for x := 0; x < buffer.Width; x++ {
		color, pixelStats, err := rm.ComputePixelColor(x, row)
		if err != nil {
			return stats, err
		}
		buffer.Set(x, row, color)
		stats.AddPixel(pixelStats)
	}
	return stats, nil
}

// numWorkers resolves the configured worker count for an image of height rows
func (rm *Raymarcher) numWorkers(height int) int {
	workers := rm.config.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, height))
}

// Execute initializes the camera and renders every pixel. Rows are
// independent, so they are spread across a worker pool when more than one
// worker is configured.
func (rm *Raymarcher) Execute() (*PixelBuffer, RenderStats, error) {
	camera := rm.scene.GetCamera()
	if camera == nil {
		return nil, RenderStats{}, ErrNoCamera
	}
	if err := rm.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if err := camera.Init(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("camera init: %w", err)
	}

	width, height := camera.Width(), camera.Height()
	buffer := NewPixelBuffer(width, height)
	stats := RenderStats{RunID: uuid.NewString()}
	workers := rm.numWorkers(height)
	startTime := time.Now()

	rm.logger.Printf("Render %s: %dx%d, %d geometries, %d lights (using %d workers)...\n",
		stats.RunID, width, height, len(rm.scene.GetGeometries()), len(rm.scene.GetLights()), workers)

	if workers == 1 {
		for row := 0; row < height; row++ {
			rowStats, err := rm.RenderRow(row, buffer)
			if err != nil {
				return nil, RenderStats{}, err
			}
			stats.Merge(rowStats)
		}
	} else {
		pool := NewWorkerPool(rm, buffer, workers)
		pool.Start()
		for row := 0; row < height; row++ {
			pool.SubmitTask(RowTask{Row: row, TaskID: row})
		}
		if err := pool.Stop(); err != nil {
			return nil, RenderStats{}, err
		}
		for {
			result, ok := pool.GetResult()
			if !ok {
				break
			}
			stats.Merge(result.Stats)
		}
	}

	stats.Finalize()
	stats.Duration = time.Since(startTime)

	rm.logger.Printf("Render %s completed in %v (%d hits, %d misses, %.1f steps/pixel)\n",
		stats.RunID, stats.Duration, stats.HitPixels, stats.MissPixels, stats.AverageSteps)

	return buffer, stats, nil
}
