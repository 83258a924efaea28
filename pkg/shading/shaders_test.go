package shading

import (
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

func testFragment(x, y float64) render.Fragment {
	return render.Fragment{
		X:         0,
		Y:         0,
		Depth:     0.5,
		Intensity: 1,
		Position:  math3d.V3(x, y, 0.5),
	}
}

func testUniforms(time int) *render.Uniforms {
	return &render.Uniforms{
		Time:  time,
		Noise: noise.NewCloud(),
	}
}

var allShaders = []struct {
	name string
	id   ID
	fn   render.Shader
}{
	{"desert", Desert, DesertShader},
	{"station", Station, StationShader},
	{"banded", Banded, BandedShader},
	{"storm", Storm, StormShader},
	{"star", Star, StarShader},
	{"ice", Ice, IceShader},
	{"forest", Forest, ForestShader},
}

func TestShadersAreDeterministic(t *testing.T) {
	f := testFragment(0.1, -0.2)
	for _, s := range allShaders {
		t.Run(s.name, func(t *testing.T) {
			a := s.fn(f, testUniforms(42))
			b := s.fn(f, testUniforms(42))
			if a != b {
				t.Errorf("same fragment shaded differently: %v vs %v", a, b)
			}
		})
	}
}

func TestShadersScaleWithIntensity(t *testing.T) {
	dark := testFragment(0.1, 0.1)
	dark.Intensity = 0
	for _, s := range allShaders {
		t.Run(s.name, func(t *testing.T) {
			if got := s.fn(dark, testUniforms(7)); got != render.Black {
				t.Errorf("zero intensity shaded %v, want black", got)
			}
		})
	}
}

func TestByIDMatchesDirectBinding(t *testing.T) {
	f := testFragment(-0.15, 0.3)
	for _, s := range allShaders {
		t.Run(s.name, func(t *testing.T) {
			u := testUniforms(100)
			if got, want := ByID(s.id)(f, u), s.fn(f, u); got != want {
				t.Errorf("ByID(%d) = %v, direct = %v", s.id, got, want)
			}
		})
	}
}

func TestByIDUnknownShadesBlack(t *testing.T) {
	f := testFragment(0.1, 0.1)
	if got := ByID(ID(200))(f, testUniforms(5)); got != render.Black {
		t.Errorf("unknown id shaded %v, want black", got)
	}
}

func TestStationGeometry(t *testing.T) {
	u := testUniforms(0)
	tests := []struct {
		name string
		x, y float64
		want render.Color
	}{
		{"dish center", 0, 0.17, render.RGB(64, 64, 64)},
		{"vertical panel line", 0.001, -0.25, render.RGB(128, 128, 128)},
		{"hull interior", 0.05, -0.35, render.RGB(102, 102, 102)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StationShader(testFragment(tc.x, tc.y), u); got != tc.want {
				t.Errorf("station at (%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestStationIgnoresTime(t *testing.T) {
	f := testFragment(0.12, -0.08)
	a := StationShader(f, testUniforms(0))
	b := StationShader(f, testUniforms(10000))
	if a != b {
		t.Errorf("station geometry changed with time: %v vs %v", a, b)
	}
}
