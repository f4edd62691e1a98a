package colorutils

import "math"

// Clamp01 clamps v to [0,1]. NaN is treated as 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp is a*(1-t) + b*t.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Cmyk2rgb converts a CMYK color value (percent) to RGB in [0,1]
func Cmyk2rgb(cmyk []float64) [3]float64 {
	var r, g, b float64
	r = (1 - cmyk[0]/100) * (1 - cmyk[3]/100)
	g = (1 - cmyk[1]/100) * (1 - cmyk[3]/100)
	b = (1 - cmyk[2]/100) * (1 - cmyk[3]/100)
	return [3]float64{Clamp01(r), Clamp01(g), Clamp01(b)}
}

// Lab2rgb converts a LAB color value (D65) to sRGB in [0,1]
func Lab2rgb(lab []float64) [3]float64 {
	var y = (lab[0] + 16) / 116
	var x = lab[1]/500 + y
	var z = y - lab[2]/200

	x = 0.95047 * labInverse(x)
	y = 1.00000 * labInverse(y)
	z = 1.08883 * labInverse(z)

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return [3]float64{
		Clamp01(gamma(r)),
		Clamp01(gamma(g)),
		Clamp01(gamma(b)),
	}
}

func labInverse(t float64) float64 {
	if t*t*t > 0.008856 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

func gamma(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}
