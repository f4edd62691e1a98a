package camo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/brandquad/camo/logger"
	"github.com/google/uuid"
)

const DefaultFolderPerm = 0777

type Config struct {
	S3Host      string
	S3Key       string
	S3Secret    string
	S3Bucket    string
	OutputRoot  string
	CoverHeight int
	SwatchSize  int
	MaxCpuCount int
	DebugMode   bool
}

const (
	defaultCoverHeight = 300
	defaultSwatchSize  = 64
)

func (c Config) withDefaults() Config {
	if c.CoverHeight <= 0 {
		c.CoverHeight = defaultCoverHeight
	}
	if c.SwatchSize <= 0 {
		c.SwatchSize = defaultSwatchSize
	}
	if c.MaxCpuCount <= 0 {
		c.MaxCpuCount = 1
	}
	if c.OutputRoot == "" {
		c.OutputRoot = os.TempDir()
	}
	return c
}

func prepareTopFolders(folders ...string) error {
	for _, folder := range folders {
		err := os.MkdirAll(folder, DefaultFolderPerm)
		if err != nil {
			return err
		}
	}
	return nil
}

// Processing renders a preview job for the mask texture at source (a local
// path or an http(s) URL) and writes preview, cover, swatches, colors.json
// and manifest.json into a fresh job folder. A failed job removes its
// folder unless DebugMode is set.
func Processing(ctx context.Context, source string, p Palette, c Config) (_ *Manifest, err error) {
	if source == "" {
		return nil, ErrMissingTexture
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c = c.withDefaults()

	job := &jobInfo{
		ID:        uuid.New().String(),
		Source:    source,
		Filename:  path.Base(strings.SplitN(source, "?", 2)[0]),
		StartTime: time.Now(),
	}
	job.Basename = strings.TrimSuffix(job.Filename, path.Ext(job.Filename))

	if c.DebugMode {
		logger.Sugar.Debug("DEBUG MODE ON")
	}

	tmp := path.Join(c.OutputRoot, job.ID)
	previews := path.Join(tmp, "preview")
	covers := path.Join(tmp, "covers")
	swatchesFolder := path.Join(tmp, "swatches")
	job.Root = tmp

	defer func() {
		if err == nil || c.DebugMode {
			return
		}
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			logger.Sugar.Warnf("Error removing directory: %v", tmp)
		}
	}()

	if err = prepareTopFolders(tmp, previews, covers, swatchesFolder); err != nil {
		return nil, err
	}

	logger.Sugar.Infof("Job: %s", job.ID)
	logger.Sugar.Infof("Source: %s", source)
	logger.Sugar.Infof("Palette: white %s gray %s black %s", p.White.Hex(), p.Gray.Hex(), p.Black.Hex())
	logger.Sugar.Infof("Tmp: %s", tmp)

	texturePath := source
	if isRemote(source) {
		file, dlErr := downloadFileTemporary(source)
		if dlErr != nil {
			return nil, dlErr
		}
		texturePath = file.Name()
		defer func() {
			if cErr := file.Close(); cErr != nil {
				logger.Sugar.Warnf("Error closing file: %v", cErr)
			}
			if rmErr := os.Remove(texturePath); rmErr != nil {
				logger.Sugar.Warnf("Error removing file: %v", texturePath)
			}
		}()
	}

	texture, err := loadTexture(texturePath)
	if err != nil {
		return nil, err
	}
	job.Width, job.Height = texture.Bounds().Dx(), texture.Bounds().Dy()

	remapped, err := Remap(ctx, NewImageSampler(texture), p, c.MaxCpuCount)
	if err != nil {
		return nil, err
	}

	job.Preview = path.Join(previews, fmt.Sprintf("%s.png", job.Basename))
	job.Cover = path.Join(covers, fmt.Sprintf("%s.png", job.Basename))
	if err = writePreview(remapped, job.Preview, job.Cover, c.CoverHeight); err != nil {
		return nil, err
	}

	if job.Swatches, err = makeSwatches(p, swatchesFolder, c.SwatchSize); err != nil {
		return nil, err
	}

	job.Colors = path.Join(tmp, "colors.json")
	colors, err := Serialize(p)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(job.Colors, colors, 0644); err != nil {
		return nil, err
	}

	manifest := makeManifest(job, p, c)
	buff, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(path.Join(tmp, "manifest.json"), buff, 0644); err != nil {
		return nil, err
	}

	if c.S3Host != "" {
		if err = syncToS3(job.ID, tmp, c); err != nil {
			return nil, err
		}
		if !c.DebugMode {
			if rmErr := os.RemoveAll(tmp); rmErr != nil {
				logger.Sugar.Warnf("Error removing directory: %v", tmp)
			}
		}
	}

	return manifest, nil
}
