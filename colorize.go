package camo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/alitto/pond"
	"github.com/brandquad/camo/logger"
)

// Remap blends every pixel of the sampled mask with p and returns the
// preview image. Rows are split into bands processed by a worker pool;
// every band writes only its own rows.
func Remap(ctx context.Context, s Sampler, p Palette, workers int) (*image.NRGBA, error) {
	if s == nil {
		return nil, ErrMissingTexture
	}
	if workers < 1 {
		workers = 1
	}

	st := time.Now()
	bounds := s.Bounds()
	logger.Sugar.Infof("[>] Remap %dx%d texture with %d workers", bounds.Dx(), bounds.Dy(), workers)
	defer func() {
		logger.Sugar.Infof("[<] Remap %dx%d texture, at %s", bounds.Dx(), bounds.Dy(), time.Since(st))
	}()

	preview, err := Preview(p, s)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if bounds.Empty() {
		return out, nil
	}

	panicHandler := func(r interface{}) {
		logger.Sugar.Errorf("Remap task panicked: %v", r)
	}
	pool := pond.New(workers, 0, pond.MinWorkers(workers), pond.PanicHandler(panicHandler))
	defer pool.StopAndWait()

	group, gctx := pool.GroupContext(ctx)

	band := bandHeight(bounds.Dy(), workers)
	for y0 := bounds.Min.Y; y0 < bounds.Max.Y; y0 += band {
		y1 := min(y0+band, bounds.Max.Y)
		group.Submit(func() (err error) {
			// A panicking band fails the whole remap instead of leaving
			// its rows black.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("rows %d-%d panicked: %v", y0, y1, r)
				}
			}()
			for y := y0; y < y1; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, toNRGBA(preview(x, y)))
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("remap: %w", err)
	}
	// Bands skipped after cancellation do not report an error.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("remap: %w", err)
	}
	return out, nil
}

// bandHeight gives each worker a few bands so uneven rows balance out.
func bandHeight(rows, workers int) int {
	n := workers * 4
	h := (rows + n - 1) / n
	if h < 1 {
		return 1
	}
	return h
}

func toNRGBA(c Color) color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 0xff,
	}
}
