package assets

import (
	_ "embed"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/brandquad/camo/colorutils"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
)

// PresetColor is given in exactly one of the hex, lab or cmyk (percent) forms.
type PresetColor struct {
	Hex  string    `json:"hex,omitempty"`
	Lab  []float64 `json:"lab,omitempty"`
	Cmyk []float64 `json:"cmyk,omitempty"`
}

type Preset struct {
	Name  string      `json:"name"`
	White PresetColor `json:"white"`
	Gray  PresetColor `json:"gray"`
	Black PresetColor `json:"black"`
}

type presetData struct {
	Presets []Preset `json:"presets"`
}

//go:embed presets.json
var presetsData []byte

// Presets maps folded preset names to presets.
var Presets map[string]Preset

func init() {
	var j presetData
	if err := json.Unmarshal(presetsData, &j); err != nil {
		panic(err)
	}
	Presets = make(map[string]Preset, len(j.Presets))
	for _, p := range j.Presets {
		Presets[Key(p.Name)] = p
	}
}

// Key folds a preset name for case-insensitive lookup.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Names returns the display names of all presets, sorted.
func Names() []string {
	names := make([]string, 0, len(Presets))
	for _, p := range Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// RGB converts the color to sRGB channels in [0,1].
func (c PresetColor) RGB() ([3]float64, error) {
	switch {
	case c.Hex != "":
		col, err := colorful.Hex(c.Hex)
		if err != nil {
			return [3]float64{}, err
		}
		return [3]float64{col.R, col.G, col.B}, nil
	case len(c.Lab) == 3:
		return colorutils.Lab2rgb(c.Lab), nil
	case len(c.Cmyk) == 4:
		return colorutils.Cmyk2rgb(c.Cmyk), nil
	}
	return [3]float64{}, errors.New("preset color needs hex, lab[3] or cmyk[4]")
}
