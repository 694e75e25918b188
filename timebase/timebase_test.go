package timebase

import (
	"math"
	"testing"
)

func TestIntroFactorClamps(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.25},
		{1, 0.5},
		{2, 1},
		{10, 1},
	}
	for _, tc := range cases {
		if got := IntroFactor(tc.t); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("IntroFactor(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestTickMonotonic(t *testing.T) {
	var b Base
	prev := -1.0
	for i := 0; i <= 300; i++ {
		c := b.Tick(float64(i) / 60)
		if c.Intro < prev {
			t.Fatalf("intro decreased at tick %d: %v < %v", i, c.Intro, prev)
		}
		if c.Intro < 0 || c.Intro > 1 {
			t.Fatalf("intro out of range at tick %d: %v", i, c.Intro)
		}
		prev = c.Intro
	}
	if prev != 1 {
		t.Errorf("expected intro saturated at 1 after 5s, got %v", prev)
	}
}

func TestTickIgnoresBackwardsReading(t *testing.T) {
	var b Base
	b.Tick(1.5)
	c := b.Tick(0.2)
	if c.Elapsed != 1.5 {
		t.Errorf("expected elapsed to stay at 1.5, got %v", c.Elapsed)
	}
	if c.Intro != 0.75 {
		t.Errorf("expected intro 0.75, got %v", c.Intro)
	}
	if b.Last() != c {
		t.Errorf("Last() = %+v, want %+v", b.Last(), c)
	}
}
