package camo

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/brandquad/camo/logger"
)

const manifestVersion = "1"

type jobInfo struct {
	ID        string
	Source    string
	Filename  string
	Basename  string
	Root      string
	Width     int
	Height    int
	Preview   string
	Cover     string
	Colors    string
	Swatches  []*Swatch
	StartTime time.Time
}

func makeManifest(job *jobInfo, p Palette, c Config) *Manifest {
	st := time.Now()
	logger.Sugar.Info("[>] Make manifest.json")
	defer func() {
		logger.Sugar.Infof("[<] Make manifest.json, at %s", time.Since(st))
	}()

	swatches := make([]*Swatch, 0, len(job.Swatches))
	for _, s := range job.Swatches {
		s.Path = relPath(job.Root, s.Filepath)
		swatches = append(swatches, s)
	}

	return &Manifest{
		Version:        manifestVersion,
		ID:             job.ID,
		TimestampStart: job.StartTime.Format("2006-01-02 15:04:05"),
		TimestampEnd:   time.Now().Format("2006-01-02 15:04:05"),
		Source:         job.Source,
		Filename:       job.Filename,
		Basename:       job.Basename,
		Size: TextureSize{
			Width:  job.Width,
			Height: job.Height,
			Units:  "px",
		},
		Preview:     relPath(job.Root, job.Preview),
		Cover:       relPath(job.Root, job.Cover),
		CoverHeight: c.CoverHeight,
		ColorsPath:  relPath(job.Root, job.Colors),
		Colors:      NewExportDocument(p),
		Swatches:    swatches,
	}
}

func relPath(root, p string) string {
	if p == "" {
		return ""
	}
	if rel, err := filepath.Rel(root, p); err == nil {
		return filepath.ToSlash(rel)
	}
	return strings.TrimPrefix(p, root)
}
