package camo

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPalette() Palette {
	return Palette{
		White: RGB(0.9, 0.85, 0.7),
		Gray:  RGB(0.4, 0.45, 0.2),
		Black: RGB(0.1, 0.05, 0.02),
	}
}

func TestBlendMatchesChainedLerp(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randColor := func() Color {
		return RGB(rng.Float64(), rng.Float64(), rng.Float64())
	}

	for i := 0; i < 1000; i++ {
		p := Palette{White: randColor(), Gray: randColor(), Black: randColor()}
		r, g, b := rng.Float64(), rng.Float64(), rng.Float64()

		want := lerp(lerp(p.White, p.Gray, r), p.Black, b).Clamp()
		got := Blend(RGB(r, g, b), p)
		assert.Equal(t, want, got, "palette %v sample (%g, %g, %g)", p, r, g, b)
	}
}

func TestBlendBoundaries(t *testing.T) {
	p := testPalette()

	assert.Equal(t, p.White, Blend(RGB(0, 0, 0), p), "r=0 b=0 selects white")
	assert.Equal(t, p.Gray, Blend(RGB(1, 0, 0), p), "r=1 b=0 selects gray")

	for _, r := range []float64{0, 0.3, 0.5, 1} {
		assert.Equal(t, p.Black, Blend(RGB(r, 0.7, 1), p), "b=1 selects black for r=%g", r)
	}
}

func TestBlendIgnoresGreen(t *testing.T) {
	p := testPalette()
	base := Blend(RGB(0.3, 0, 0.6), p)
	for _, g := range []float64{0.1, 0.5, 1, 7} {
		assert.Equal(t, base, Blend(RGB(0.3, g, 0.6), p))
	}
}

func TestBlendDefaultPalette(t *testing.T) {
	got := Blend(RGB(0.5, 0.123, 0.5), DefaultPalette())
	assert.Equal(t, RGB(0.375, 0.375, 0.375), got)
}

func TestBlendIsNotThreeWay(t *testing.T) {
	p := Palette{White: RGB(1, 0, 0), Gray: RGB(0, 1, 0), Black: RGB(0, 0, 1)}

	// With both factors at one half the chained blend keeps a quarter of
	// white and a quarter of gray, a symmetric three-way mix would not.
	got := Blend(RGB(0.5, 0, 0.5), p)
	assert.Equal(t, RGB(0.25, 0.25, 0.5), got)
}

func TestBlendClampsOutOfRange(t *testing.T) {
	p := testPalette()

	tests := []struct {
		name   string
		sample Color
		want   Color
	}{
		{"hdr red", RGB(4, 0, 0), p.Gray},
		{"negative red", RGB(-2, 0, 0), p.White},
		{"hdr blue", RGB(0.5, 0, 12), p.Black},
		{"negative blue", RGB(1, 0, -1), p.Gray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.sample, p))
		})
	}

	bad := Palette{White: RGB(2, -1, 0.5), Gray: RGB(0.5, 0.5, 0.5), Black: RGB(0, 0, 0)}
	got := Blend(RGB(0, 0, 0), bad)
	assert.True(t, got.Valid(), "result %v must be in range", got)
	assert.Equal(t, RGB(1, 0, 0.5), got)
}

func TestBlendConcurrent(t *testing.T) {
	p := testPalette()
	want := Blend(RGB(0.2, 0, 0.8), p)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, Blend(RGB(0.2, 0, 0.8), p))
			}
		}()
	}
	wg.Wait()
}
