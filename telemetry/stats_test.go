package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		mean   float64
		std    float64
		min    float64
		max    float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{5}, 5, 0, 5, 5},
		{"unsorted", []float64{4, 1, 3, 2, 5}, 3, math.Sqrt(2.5), 1, 5},
		{"constant", []float64{2, 2, 2, 2}, 2, 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.values)
			if s.N != len(tt.values) {
				t.Errorf("N = %d, want %d", s.N, len(tt.values))
			}
			if math.Abs(s.Mean-tt.mean) > 1e-9 {
				t.Errorf("mean = %v, want %v", s.Mean, tt.mean)
			}
			if math.Abs(s.Std-tt.std) > 1e-9 {
				t.Errorf("std = %v, want %v", s.Std, tt.std)
			}
			if s.Min != tt.min || s.Max != tt.max {
				t.Errorf("range = [%v, %v], want [%v, %v]", s.Min, s.Max, tt.min, tt.max)
			}
		})
	}
}

func TestSummarizePercentilesOrdered(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[99-i] = float64(i)
	}
	s := Summarize(values)
	if !(s.Min <= s.P50 && s.P50 <= s.P90 && s.P90 <= s.P99 && s.P99 <= s.Max) {
		t.Errorf("percentiles out of order: %+v", s)
	}
	if values[0] != 99 {
		t.Error("Summarize must not sort its input in place")
	}
}
