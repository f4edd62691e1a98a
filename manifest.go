package camo

import (
	"database/sql/driver"
	"encoding/json"
)

// Material property names the engine-side shader exposes for each slot.
const (
	WhiteReplaceColorProperty = "_WhiteReplaceColor"
	GrayReplaceColorProperty  = "_GrayReplaceColor"
	BlackReplaceColorProperty = "_BlackReplaceColor"
)

var slotProperties = map[Slot]string{
	SlotWhite: WhiteReplaceColorProperty,
	SlotGray:  GrayReplaceColorProperty,
	SlotBlack: BlackReplaceColorProperty,
}

type Swatch struct {
	Filepath string `json:"-"`
	Path     string `json:"path"`
	Slot     Slot   `json:"slot"`
	Property string `json:"property"`
	RGB      string `json:"rgb"`
}

type TextureSize struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Units  string `json:"units"`
}

type Manifest struct {
	Version        string         `json:"version"`
	ID             string         `json:"id"`
	TimestampStart string         `json:"timestamp_start"`
	TimestampEnd   string         `json:"timestamp_end"`
	Source         string         `json:"source"`
	Filename       string         `json:"filename"`
	Basename       string         `json:"basename"`
	Size           TextureSize    `json:"size"`
	Preview        string         `json:"preview"`
	Cover          string         `json:"cover"`
	CoverHeight    int            `json:"cover_height"`
	ColorsPath     string         `json:"colors_path"`
	Colors         ExportDocument `json:"colors"`
	Swatches       []*Swatch      `json:"swatches"`
}

func (b *Manifest) GetSwatch(slot Slot) *Swatch {
	for _, s := range b.Swatches {
		if s.Slot == slot {
			return s
		}
	}
	return nil
}

// Palette returns the colors the job was rendered with.
func (b *Manifest) Palette() Palette {
	return b.Colors.Palette()
}

func (b *Manifest) Scan(src interface{}) error {
	return JsonScan(src, b)
}

func (b Manifest) Value() (driver.Value, error) {
	return json.Marshal(b)
}
