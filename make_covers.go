package camo

import (
	"fmt"
	"image"
	"path"
	"time"

	"github.com/brandquad/camo/logger"
	"github.com/davidbyttow/govips/v2/vips"
)

// writePreview stores the remapped texture and a square cover thumbnail of coverHeight.
func writePreview(img image.Image, previewPath, coverPath string, coverHeight int) error {
	st := time.Now()
	logger.Sugar.Infof("[>] Write preview %s", previewPath)
	defer func() {
		logger.Sugar.Infof("[<] Write preview %s, at %s", previewPath, time.Since(st))
	}()

	ref, err := imageRef(img)
	if err != nil {
		return err
	}
	defer ref.Close()

	if err = toPng(ref, previewPath); err != nil {
		return err
	}

	if err = ref.Thumbnail(coverHeight, coverHeight, vips.InterestingAll); err != nil {
		return err
	}
	return toPng(ref, coverPath)
}

// makeSwatches renders one solid PNG per palette slot.
func makeSwatches(p Palette, folder string, size int) ([]*Swatch, error) {
	swatches := make([]*Swatch, 0, len(Slots))
	for _, slot := range Slots {
		c := p.Get(slot)

		ref, err := createImage(size, size, c.colorful())
		if err != nil {
			return nil, err
		}

		output := path.Join(folder, fmt.Sprintf("%s.png", slot))
		err = toPng(ref, output)
		ref.Close()
		if err != nil {
			return nil, err
		}

		swatches = append(swatches, &Swatch{
			Filepath: output,
			Slot:     slot,
			Property: slotProperties[slot],
			RGB:      c.Hex(),
		})
	}
	return swatches, nil
}
