package scene

import (
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
)

func TestBuiltinScenes_Build(t *testing.T) {
	tests := []struct {
		name         string
		create       func(...renderer.CameraConfig) (*Scene, error)
		expectWidth  int
		expectHeight int
		expectShapes int
		expectLights int
	}{
		{"default", NewDefaultScene, 500, 500, 1, 1},
		{"reference", NewReferenceScene, 250, 250, 1, 1},
		{"showcase", NewShowcaseScene, 400, 225, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.create()
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if s.CameraConfig.Width != tt.expectWidth || s.CameraConfig.Height != tt.expectHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectWidth, tt.expectHeight, s.CameraConfig.Width, s.CameraConfig.Height)
			}
			if len(s.Geometries) != tt.expectShapes {
				t.Errorf("Expected %d geometries, got %d", tt.expectShapes, len(s.Geometries))
			}
			if len(s.Lights) != tt.expectLights {
				t.Errorf("Expected %d lights, got %d", tt.expectLights, len(s.Lights))
			}
			if err := s.GetCamera().Init(); err != nil {
				t.Errorf("Camera Init: %v", err)
			}
		})
	}
}

func TestBuiltinScenes_CameraOverride(t *testing.T) {
	s, err := NewShowcaseScene(renderer.CameraConfig{Width: 40})
	if err != nil {
		t.Fatalf("NewShowcaseScene: %v", err)
	}
	if s.CameraConfig.Width != 40 || s.CameraConfig.Height != 225 {
		t.Errorf("Expected 40x225, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if s.CameraConfig.FOV != 45 {
		t.Errorf("Expected FOV to survive the override, got %g", s.CameraConfig.FOV)
	}
}

func TestReferenceScene_Render(t *testing.T) {
	// Odd resolution puts the center pixel exactly on the optical axis
	s, err := NewReferenceScene(renderer.CameraConfig{Width: 51, Height: 51})
	if err != nil {
		t.Fatalf("NewReferenceScene: %v", err)
	}

	config := renderer.DefaultMarchConfig()
	config.NumWorkers = 4
	buffer, stats, err := renderer.NewRaymarcher(s, config, nil).Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// The center hit is at (0,0,1) with normal +Z; the light direction is
	// (0.5,0.5,1)/|..|, so attenuation is 1/sqrt(1.5) ~ 0.8165 -> 208
	center := buffer.At(25, 25)
	for _, channel := range []uint8{center.R, center.G, center.B} {
		if channel < 206 || channel > 210 {
			t.Errorf("Expected center channel near 208, got %v", center)
			break
		}
	}

	background := core.ToRGB8(core.NewColor8(50, 50, 50))
	if corner := buffer.At(0, 0); corner != background {
		t.Errorf("Expected background %v in the corner, got %v", background, corner)
	}

	if stats.HitPixels == 0 || stats.MissPixels == 0 {
		t.Errorf("Expected both hits and misses, got %+v", stats)
	}
	if stats.HitPixels+stats.MissPixels != 51*51 {
		t.Errorf("Expected %d pixels, got %d", 51*51, stats.HitPixels+stats.MissPixels)
	}
}
