package camo

import (
	"image"
	"image/color"
)

// Sampler reads mask colors from a decoded texture.
type Sampler interface {
	Bounds() image.Rectangle
	At(x, y int) Color
}

// PreviewFunc returns the blended preview color of one texture coordinate.
type PreviewFunc func(x, y int) Color

type imageSampler struct {
	img image.Image
}

// NewImageSampler adapts a Go image. Alpha is not a mask channel:
// non-premultiplied images keep their stored channel values even where
// alpha is zero. Other color models are read with 16-bit precision.
func NewImageSampler(img image.Image) Sampler {
	if img == nil {
		return nil
	}
	return imageSampler{img: img}
}

func (s imageSampler) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s imageSampler) At(x, y int) Color {
	switch img := s.img.(type) {
	case *image.NRGBA:
		if !(image.Point{X: x, Y: y}.In(img.Rect)) {
			return Color{}
		}
		px := img.Pix[img.PixOffset(x, y):]
		return Color{
			R: float64(px[0]) / 0xff,
			G: float64(px[1]) / 0xff,
			B: float64(px[2]) / 0xff,
		}
	case *image.NRGBA64:
		if !(image.Point{X: x, Y: y}.In(img.Rect)) {
			return Color{}
		}
		px := img.Pix[img.PixOffset(x, y):]
		return Color{
			R: float64(uint16(px[0])<<8|uint16(px[1])) / 0xffff,
			G: float64(uint16(px[2])<<8|uint16(px[3])) / 0xffff,
			B: float64(uint16(px[4])<<8|uint16(px[5])) / 0xffff,
		}
	}
	c := color.NRGBA64Model.Convert(s.img.At(x, y)).(color.NRGBA64)
	return Color{
		R: float64(c.R) / 0xffff,
		G: float64(c.G) / 0xffff,
		B: float64(c.B) / 0xffff,
	}
}

// Preview binds a palette to a texture. A nil sampler is a caller error
// and fails with ErrMissingTexture instead of falling back to a color.
func Preview(p Palette, s Sampler) (PreviewFunc, error) {
	if s == nil {
		return nil, ErrMissingTexture
	}
	return func(x, y int) Color {
		return Blend(s.At(x, y), p)
	}, nil
}
