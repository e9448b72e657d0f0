package stagefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeValid(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		expect bool
	}{
		{"positive", Size{480, 320}, true},
		{"fractional", Size{0.25, 0.5}, true},
		{"zero width", Size{0, 320}, false},
		{"zero height", Size{480, 0}, false},
		{"negative", Size{-1, 320}, false},
		{"nan", Size{math.NaN(), 320}, false},
		{"inf", Size{480, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.size.Valid())
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, r.Contains(tt.x, tt.y))
		})
	}
}
