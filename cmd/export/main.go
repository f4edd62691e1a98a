package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/brandquad/camo"
	"github.com/brandquad/camo/logger"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type Config struct {
	LogLevel string `envconfig:"CAMO_LOG_LEVEL" default:"warn"`
}

func main() {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(c.LogLevel, ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	preset := flag.String("preset", "", "built-in palette")
	paletteFile := flag.String("palette", "", "palette file (.yaml or exported .json)")
	white := flag.String("white", "", "white replacement color, #rrggbb")
	gray := flag.String("gray", "", "gray replacement color, #rrggbb")
	black := flag.String("black", "", "black replacement color, #rrggbb")
	output := flag.String("o", "", "output file, stdout when empty")
	list := flag.Bool("list", false, "list built-in palettes and exit")
	flag.Parse()

	if *list {
		for _, name := range camo.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	palette, err := camo.BuildPalette(*preset, *paletteFile, map[camo.Slot]string{
		camo.SlotWhite: *white,
		camo.SlotGray:  *gray,
		camo.SlotBlack: *black,
	})
	if err != nil {
		logger.Log.Fatal("Invalid palette", zap.Error(err))
	}

	if *output == "" {
		if err = camo.WriteDocument(os.Stdout, palette); err != nil {
			logger.Log.Fatal("Export failed", zap.Error(err))
		}
		return
	}

	f, err := os.Create(*output)
	if err != nil {
		logger.Log.Fatal("Export failed", zap.Error(err))
	}
	if err = camo.WriteDocument(f, palette); err != nil {
		f.Close()
		logger.Log.Fatal("Export failed", zap.String("path", *output), zap.Error(err))
	}
	if err = f.Close(); err != nil {
		logger.Log.Fatal("Export failed", zap.String("path", *output), zap.Error(err))
	}
	logger.Log.Info("Camouflage data exported", zap.String("path", *output))
}
