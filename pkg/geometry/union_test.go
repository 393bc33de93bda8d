package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

func TestUnion_MapAndColor(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	blue := core.NewColor(0, 0, 1)
	left, _ := NewSphere(core.NewVec3(-2, 0, 0), 1, red)
	right, _ := NewSphere(core.NewVec3(2, 0, 0), 1, blue)

	union, err := NewUnion(left, right)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}

	if d := union.Map(core.NewVec3(0, 0, 0)); math.Abs(d-1) > 1e-12 {
		t.Errorf("Expected distance 1 between the spheres, got %f", d)
	}
	if d := union.Map(core.NewVec3(2, 0, 0)); math.Abs(d+1) > 1e-12 {
		t.Errorf("Expected -1 at the right sphere's center, got %f", d)
	}

	if c := SurfaceColor(union, core.NewVec3(-3, 0, 0)); c != red {
		t.Errorf("Expected red near the left sphere, got %v", c)
	}
	if c := SurfaceColor(union, core.NewVec3(3, 0, 0)); c != blue {
		t.Errorf("Expected blue near the right sphere, got %v", c)
	}

	normal, err := union.Normal(core.NewVec3(3, 0, 0))
	if err != nil {
		t.Fatalf("Normal: %v", err)
	}
	if !normal.Equals(core.NewVec3(1, 0, 0), 1e-6) {
		t.Errorf("Expected normal (1,0,0), got %v", normal)
	}
}

func TestUnion_SkipsInvisibleChildren(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	blue := core.NewColor(0, 0, 1)
	left, _ := NewSphere(core.NewVec3(-2, 0, 0), 1, red)
	right, _ := NewSphere(core.NewVec3(2, 0, 0), 1, blue)
	left.Visible = false

	union, err := NewUnion(left, right)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}

	// Only the right sphere contributes, even at the hidden sphere's center
	if d := union.Map(core.NewVec3(-2, 0, 0)); math.Abs(d-3) > 1e-12 {
		t.Errorf("Expected distance 3 to the visible sphere, got %f", d)
	}
	if c := SurfaceColor(union, core.NewVec3(-3, 0, 0)); c != blue {
		t.Errorf("Expected blue from the only visible child, got %v", c)
	}

	right.Visible = false
	if d := union.Map(core.NewVec3(0, 0, 0)); !math.IsInf(d, 1) {
		t.Errorf("Expected +Inf with no visible children, got %f", d)
	}
	if c := SurfaceColor(union, core.NewVec3(0, 0, 0)); c != union.GetColor() {
		t.Errorf("Expected the union's own color, got %v", c)
	}
}

func TestUnion_Equal(t *testing.T) {
	a, _ := NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1))
	b, _ := NewBox(core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 1), core.NewColor(1, 1, 1))
	c, _ := NewSphere(core.NewVec3(0, 0, 0), 2, core.NewColor(1, 1, 1))

	u1, _ := NewUnion(a, b)
	u2, _ := NewUnion(a, b)
	u3, _ := NewUnion(c, b)
	u4, _ := NewUnion(a)

	if !u1.Equal(u2) {
		t.Error("Expected unions of equal children to be equal")
	}
	if u1.Equal(u3) {
		t.Error("Expected unions with different children to differ")
	}
	if u1.Equal(u4) {
		t.Error("Expected unions with different child counts to differ")
	}
	if u1.Equal(a) {
		t.Error("Expected union and sphere to differ")
	}
}

func TestUnion_Empty(t *testing.T) {
	if _, err := NewUnion(); !errors.Is(err, ErrEmptyUnion) {
		t.Errorf("Expected ErrEmptyUnion, got %v", err)
	}
}
