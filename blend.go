package camo

import "github.com/brandquad/camo/colorutils"

// Blend maps one mask sample to its preview color.
//
// The red channel mixes white towards gray, then the blue channel mixes
// that result towards black. The green channel is not used. Factors and
// the result are clamped to [0,1], so HDR or corrupt samples never
// produce colors outside the range.
func Blend(sample Color, p Palette) Color {
	r := colorutils.Clamp01(sample.R)
	b := colorutils.Clamp01(sample.B)

	stage1 := lerp(p.White, p.Gray, r)
	return lerp(stage1, p.Black, b).Clamp()
}

func lerp(a, b Color, t float64) Color {
	return Color{
		R: colorutils.Lerp(a.R, b.R, t),
		G: colorutils.Lerp(a.G, b.G, t),
		B: colorutils.Lerp(a.B, b.B, t),
	}
}
