package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandquad/camo"
	"github.com/brandquad/camo/logger"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type Config struct {
	S3Host      string `envconfig:"CAMO_S3_HOST"`
	S3Key       string `envconfig:"CAMO_S3_KEY"`
	S3Secret    string `envconfig:"CAMO_S3_SECRET"`
	S3Bucket    string `envconfig:"CAMO_BUCKET" default:"camo"`
	OutputRoot  string `envconfig:"CAMO_OUTPUT"`
	CoverHeight int    `envconfig:"CAMO_COVER_H" default:"300"`
	SwatchSize  int    `envconfig:"CAMO_SWATCH_SIZE" default:"64"`
	MaxCpuCount int    `envconfig:"MAX_CPU_COUNT" default:"4"`
	DebugMode   bool   `envconfig:"CAMO_DEBUG" default:"false"`
	LogLevel    string `envconfig:"CAMO_LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"CAMO_LOG_FILE"`
}

func (c Config) MakeCamoConfig() camo.Config {
	return camo.Config{
		S3Host:      c.S3Host,
		S3Key:       c.S3Key,
		S3Secret:    c.S3Secret,
		S3Bucket:    c.S3Bucket,
		OutputRoot:  c.OutputRoot,
		CoverHeight: c.CoverHeight,
		SwatchSize:  c.SwatchSize,
		MaxCpuCount: c.MaxCpuCount,
		DebugMode:   c.DebugMode,
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one preview job and returns the process exit status.
func run(args []string, stdout io.Writer) int {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	flags := flag.NewFlagSet("camo", flag.ContinueOnError)
	preset := flags.String("preset", "", "built-in palette ("+fmt.Sprint(camo.PresetNames())+")")
	paletteFile := flags.String("palette", "", "palette file (.yaml or exported .json)")
	white := flags.String("white", "", "white replacement color, #rrggbb")
	gray := flags.String("gray", "", "gray replacement color, #rrggbb")
	black := flags.String("black", "", "black replacement color, #rrggbb")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: camo [flags] <texture path or url>\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if err := logger.Init(c.LogLevel, c.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}
	source := flags.Arg(0)

	palette, err := camo.BuildPalette(*preset, *paletteFile, map[camo.Slot]string{
		camo.SlotWhite: *white,
		camo.SlotGray:  *gray,
		camo.SlotBlack: *black,
	})
	if err != nil {
		logger.Log.Error("Invalid palette", zap.Error(err))
		return 1
	}

	vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
	vips.Startup(&vips.Config{
		ConcurrencyLevel: c.MaxCpuCount,
	})
	defer vips.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manifest, err := camo.Processing(ctx, source, palette, c.MakeCamoConfig())
	if err != nil {
		logger.Log.Error("Processing failed", zap.String("source", source), zap.Error(err))
		return 1
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		logger.Log.Error("Encode manifest", zap.Error(err))
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}
