package camo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"strings"
	"time"

	"github.com/brandquad/camo/logger"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"
)

func syncToS3(jobId string, tmp string, c Config) error {
	st := time.Now()
	logger.Sugar.Infof("[>] Copy to S3: %s %s", c.S3Host, c.S3Bucket)

	if err := os.Setenv("MC_NO_COLOR", "1"); err != nil {
		return err
	}

	aliasName := fmt.Sprintf("camo%s", strings.ReplaceAll(jobId, "-", ""))
	to := fmt.Sprintf("%s/%s/%s", aliasName, c.S3Bucket, jobId)
	from := fmt.Sprintf("%s/", tmp)

	if _, err := execCmd("mc", "alias", "set", aliasName, c.S3Host, c.S3Key, c.S3Secret); err != nil {
		return err
	}

	defer func() {
		if _, err := execCmd("mc", "alias", "rm", aliasName); err != nil {
			logger.Sugar.Warnf("[!] Error removing mc alias: %v", err)
		}
		logger.Sugar.Infof("[<] Copy to S3, at %s", time.Since(st))
	}()

	_, err := execCmd("mc", "cp", "-r", from, to, "--quiet")
	return err
}

func execCmd(command string, args ...string) ([]byte, error) {
	cmd := exec.Command(command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w", output, err)
	}
	return output, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// downloadFileTemporary get url to file and return file object after downloading
func downloadFileTemporary(link string) (*os.File, error) {
	st := time.Now()
	logger.Sugar.Infof("[>] Downloading %s", link)
	defer func() {
		logger.Sugar.Infof("[<] Downloading %s, at %s", link, time.Since(st))
	}()

	resp, err := http.Get(link)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", link, ErrMissingTexture, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w: %s", link, ErrMissingTexture, resp.Status)
	}

	ext := path.Ext(strings.SplitN(link, "?", 2)[0])
	file, err := os.CreateTemp("", fmt.Sprintf("camo-*%s", ext))
	if err != nil {
		return nil, err
	}

	if _, err = io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, errors.Join(ErrUnreadableTexture, err)
	}
	return file, file.Sync()
}

// createImage return empty vips image with a certain width, height and background color
func createImage(w, h int, c colorful.Color) (*vips.ImageRef, error) {
	var cR, cG, cB uint8 = c.RGB255()
	color := []float64{float64(cR), float64(cG), float64(cB)}

	imageRef, err := vips.Black(w, h)
	if err != nil {
		return nil, err
	}
	err = imageRef.ToColorSpace(vips.InterpretationSRGB)
	if err != nil {
		imageRef.Close()
		return nil, err
	}

	err = imageRef.Linear([]float64{0, 0, 0}, color)
	if err != nil {
		imageRef.Close()
		return nil, err
	}

	return imageRef, nil
}
