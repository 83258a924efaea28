package noise

import (
	"math"
	"testing"
)

func TestSameSeedSameSamples(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := range 100 {
		x, y, z := float64(i)*1.7, float64(i)*-0.3, float64(i)*2.1
		if a.Sample2(x, y) != b.Sample2(x, y) {
			t.Fatalf("2D sample %d differs between equal seeds", i)
		}
		if a.Sample3(x, y, z) != b.Sample3(x, y, z) {
			t.Fatalf("3D sample %d differs between equal seeds", i)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	var same int
	for i := range 50 {
		x, y := float64(i)*3.1, float64(i)*1.9
		if a.Sample2(x, y) == b.Sample2(x, y) {
			same++
		}
	}
	if same == 50 {
		t.Error("different seeds produced identical samples everywhere")
	}
}

func TestSamplesInRange(t *testing.T) {
	s := NewCloud()
	for i := range 200 {
		x, y, z := float64(i)*13.7, float64(i)*-7.3, float64(i)*5.9
		if v := s.Sample2(x, y); math.Abs(v) > 1.01 {
			t.Fatalf("Sample2(%v,%v) = %v, out of range", x, y, v)
		}
		if v := s.Sample3(x, y, z); math.Abs(v) > 1.01 {
			t.Fatalf("Sample3(%v,%v,%v) = %v, out of range", x, y, z, v)
		}
	}
}

func TestSetFrequency(t *testing.T) {
	a := New(7)
	b := New(7)
	b.SetFrequency(defaultFrequency * 2)
	if a.Sample2(100, 50) != b.Sample2(50, 25) {
		t.Error("doubling frequency should equal sampling at doubled coordinates")
	}
}
