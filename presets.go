package camo

import (
	"fmt"

	"github.com/brandquad/camo/assets"
)

// Preset returns a built-in palette. Names are matched case-insensitively.
func Preset(name string) (Palette, error) {
	preset, ok := assets.Presets[assets.Key(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}

	var p Palette
	for slot, c := range map[Slot]assets.PresetColor{
		SlotWhite: preset.White,
		SlotGray:  preset.Gray,
		SlotBlack: preset.Black,
	} {
		rgb, err := c.RGB()
		if err != nil {
			return Palette{}, fmt.Errorf("preset %s %s: %w", preset.Name, slot, err)
		}
		if err = p.Set(slot, colorFromArray(rgb)); err != nil {
			return Palette{}, err
		}
	}
	return p, nil
}

func PresetNames() []string {
	return assets.Names()
}

// BuildPalette starts from the default palette, applies a preset, then a
// palette file, then per-slot hex overrides. Empty arguments are skipped.
func BuildPalette(preset, file string, overrides map[Slot]string) (Palette, error) {
	p := DefaultPalette()
	var err error

	if preset != "" {
		if p, err = Preset(preset); err != nil {
			return Palette{}, err
		}
	}
	if file != "" {
		if p, err = LoadPalette(file); err != nil {
			return Palette{}, err
		}
	}
	for _, slot := range Slots {
		hex := overrides[slot]
		if hex == "" {
			continue
		}
		c, err := ColorFromHex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", slot, err)
		}
		if err = p.Set(slot, c); err != nil {
			return Palette{}, err
		}
	}
	return p, nil
}
