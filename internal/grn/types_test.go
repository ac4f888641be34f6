package grn

import (
	"math"
	"testing"
)

func TestSeriesClone(t *testing.T) {
	s := Series{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] != 1 {
		t.Error("clone aliases the original")
	}
}

func TestSeriesLast(t *testing.T) {
	if got := (Series{}).Last(); got != 0 {
		t.Errorf("empty series last = %f, want 0", got)
	}
	if got := (Series{1, 2, 3}).Last(); got != 3 {
		t.Errorf("last = %f, want 3", got)
	}
}

func TestSeriesMax(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		want float64
	}{
		{"empty", Series{}, 0},
		{"single", Series{-2}, -2},
		{"rising", Series{0, 1, 5, 3}, 5},
		{"negative", Series{-3, -1, -2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Max(); got != tt.want {
				t.Errorf("max = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSeriesMaxAbs(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		want float64
	}{
		{"empty", Series{}, 0},
		{"positive", Series{0, 1, 5, 3}, 5},
		{"negative dominates", Series{-7, 2, 4}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.MaxAbs(); got != tt.want {
				t.Errorf("maxabs = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSeriesIsValid(t *testing.T) {
	if !(Series{0, 1, -2}).IsValid() {
		t.Error("finite series reported invalid")
	}
	if (Series{0, math.NaN()}).IsValid() {
		t.Error("NaN series reported valid")
	}
	if (Series{math.Inf(1)}).IsValid() {
		t.Error("Inf series reported valid")
	}
}
