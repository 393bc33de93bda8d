package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/output"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

func main() {
	defaults := renderer.DefaultMarchConfig()

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene name (see -help) or path to a .json scene file")
	width := flag.Int("width", 0, "Override image width in pixels")
	height := flag.Int("height", 0, "Override image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = number of CPUs)")
	maxSteps := flag.Int("max-steps", defaults.MaxSteps, "Maximum march steps per ray")
	maxDistance := flag.Float64("max-distance", defaults.MaxDistance, "Distance after which a ray is a miss")
	epsilon := flag.Float64("epsilon", defaults.Epsilon, "Surface hit threshold")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting SDF Raymarcher...")

	selectedScene, err := createScene(*sceneType, renderer.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := defaults
	config.NumWorkers = *workers
	config.MaxSteps = *maxSteps
	config.MaxDistance = *maxDistance
	config.Epsilon = *epsilon

	raymarcher := renderer.NewRaymarcher(selectedScene, config, core.NewDefaultLogger())

	buffer, stats, err := raymarcher.Execute()
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Steps per pixel: %.1f (max %d)\n", stats.AverageSteps, stats.MaxStepsUsed)

	filename := *out
	if filename == "" {
		filename = createOutputPath(*sceneType, time.Now())
	}
	if err := output.SavePNG(filename, buffer); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("SDF Raymarcher")
	fmt.Println("Usage: raymarcher [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()

	scenes, err := scene.ListScenes(scene.FindScenesDir())
	if err != nil {
		fmt.Printf("Error listing scenes: %v\n", err)
		return
	}
	fmt.Println("Available scenes:")
	for _, info := range scenes {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

// createScene builds the named scene with the given camera overrides
func createScene(sceneType string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Create(sceneType, scene.FindScenesDir(), overrides)
}

// createOutputPath returns output/<scene>/render_<timestamp>.png, using the
// file name without extension for scene files
func createOutputPath(sceneType string, now time.Time) string {
	name := sceneType
	if strings.HasSuffix(name, ".json") {
		name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}
