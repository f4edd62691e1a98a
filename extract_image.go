package camo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/brandquad/camo/logger"
	"github.com/davidbyttow/govips/v2/vips"
)

// loadTexture decodes a mask texture with libvips and returns it as an sRGB Go image.
func loadTexture(filename string) (image.Image, error) {
	st := time.Now()
	logger.Sugar.Infof("[>] Load texture %s", filename)
	defer func() {
		logger.Sugar.Infof("[<] Load texture %s, at %s", filename, time.Since(st))
	}()

	if _, err := os.Stat(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", filename, ErrMissingTexture)
		}
		return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
	}

	ref, err := vips.LoadImageFromFile(filename, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
	}
	defer ref.Close()

	if ref.Width() == 0 || ref.Height() == 0 {
		return nil, fmt.Errorf("%s: %w: empty image", filename, ErrUnreadableTexture)
	}

	switch ref.ColorSpace() {
	case vips.InterpretationSRGB, vips.InterpretationRGB, vips.InterpretationRGB16,
		vips.InterpretationBW, vips.InterpretationGrey16, vips.InterpretationCMYK:
		if err = ref.ToColorSpace(vips.InterpretationSRGB); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w: unsupported color space", filename, ErrUnreadableTexture)
	}

	// Mask channels are independent of coverage; the PNG decoder would
	// otherwise hand back zeroed channels for transparent pixels.
	if ref.HasAlpha() {
		if err = ref.ExtractBand(0, 3); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
		}
	}

	buffer, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
	}

	img, err := png.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filename, ErrUnreadableTexture, err)
	}
	return img, nil
}

// imageRef hands a Go image over to libvips.
func imageRef(img image.Image) (*vips.ImageRef, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return vips.NewImageFromBuffer(buf.Bytes())
}

func toPng(ref *vips.ImageRef, output string) error {
	buffer, _, err := ref.ExportPng(&vips.PngExportParams{
		StripMetadata: true,
		Compression:   6,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(output, buffer, 0644)
}
