package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDirectionalLight_Sample(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.White, 3)

	for _, p := range []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(100, -50, 7)} {
		s := light.Sample(p)
		if !s.Direction.Equals(core.NewVec3(0, 1, 0)) {
			t.Errorf("Expected direction toward light (0,1,0), got %v", s.Direction)
		}
		if !math.IsInf(s.Distance, 1) {
			t.Errorf("Expected infinite distance, got %v", s.Distance)
		}
		if s.Intensity != 3 {
			t.Errorf("Expected unattenuated intensity 3, got %v", s.Intensity)
		}
	}

	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected type %s, got %s", LightTypeDirectional, light.Type())
	}
}

func TestSphericalLight_InverseSquareFalloff(t *testing.T) {
	light := NewSphericalLight(core.NewPoint(0, 0, -2), core.White, 40)

	tests := []struct {
		name     string
		point    core.Point
		distance float64
	}{
		{"one unit", core.NewPoint(0, 0, -3), 1},
		{"two units", core.NewPoint(0, 2, -2), 2},
		{"four units", core.NewPoint(4, 0, -2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := light.Sample(tt.point)

			if math.Abs(s.Distance-tt.distance) > 1e-12 {
				t.Errorf("Expected distance %v, got %v", tt.distance, s.Distance)
			}

			expected := 40 / (4 * math.Pi * tt.distance * tt.distance)
			if math.Abs(float64(s.Intensity)-expected) > 1e-5 {
				t.Errorf("Expected intensity %v, got %v", expected, s.Intensity)
			}

			// Direction points from the shading point to the light
			back := tt.point.Add(s.Direction.Multiply(s.Distance))
			if back.Sub(light.Position).Length() > 1e-9 {
				t.Errorf("Direction does not lead to the light: reached %v", back)
			}
		})
	}
}
