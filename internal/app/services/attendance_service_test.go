package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian/campusops/internal/pkg/helpers"
)

func TestSplitHours(t *testing.T) {
	tests := []struct {
		name          string
		total         float64
		percent       int
		wantTheory    float64
		wantPractical float64
	}{
		{"even split", 8, 50, 4, 4},
		{"quarter theory", 7.5, 25, 1.88, 5.62},
		{"all theory", 6.25, 100, 6.25, 0},
		{"no theory", 6.25, 0, 0, 6.25},
		{"odd hours", 7.33, 35, 2.57, 4.76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theory, practical := SplitHours(tt.total, tt.percent)
			assert.Equal(t, tt.wantTheory, theory)
			assert.Equal(t, tt.wantPractical, practical)
		})
	}
}

func TestSplitHoursSumsToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		total := rng.Float64() * 14
		percent := rng.Intn(21) * 5

		theory, practical := SplitHours(total, percent)
		sum := theory + practical
		assert.InDelta(t, helpers.Round2(total), sum, 0.01,
			"split of %f at %d%% does not sum back", total, percent)
		assert.True(t, theory >= 0 && practical >= 0)
	}
}

func TestValidTheoryPercent(t *testing.T) {
	for p := 0; p <= 100; p += 5 {
		assert.True(t, ValidTheoryPercent(p), "percent %d should be valid", p)
	}
	assert.False(t, ValidTheoryPercent(-5))
	assert.False(t, ValidTheoryPercent(105))
	assert.False(t, ValidTheoryPercent(3))
	assert.False(t, ValidTheoryPercent(52))
}
