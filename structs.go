package camo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/brandquad/camo/colorutils"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidColorChannel = errors.New("color channel out of range")
	ErrMalformedDocument   = errors.New("malformed document")
	ErrMissingTexture      = errors.New("missing texture")
	ErrUnreadableTexture   = errors.New("unreadable texture")
	ErrUnknownPreset       = errors.New("unknown preset")
)

type Slot string

const (
	SlotWhite Slot = "white"
	SlotGray  Slot = "gray"
	SlotBlack Slot = "black"
)

var Slots = []Slot{SlotWhite, SlotGray, SlotBlack}

func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotWhite:
		return SlotWhite, nil
	case SlotGray, "grey":
		return SlotGray, nil
	case SlotBlack:
		return SlotBlack, nil
	}
	return "", fmt.Errorf("unknown slot %q", s)
}

// Color is an RGB color without alpha, channels in [0,1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func colorFromArray(a [3]float64) Color {
	return Color{R: a[0], G: a[1], B: a[2]}
}

// ColorFromHex parses "#rrggbb" (or the short "#rgb" form).
func ColorFromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// Array returns the channels in R,G,B order.
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func (c Color) Valid() bool {
	for _, v := range c.Array() {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func (c Color) Clamp() Color {
	return Color{
		R: colorutils.Clamp01(c.R),
		G: colorutils.Clamp01(c.G),
		B: colorutils.Clamp01(c.B),
	}
}

func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// Palette holds the three replacement colors of a camouflage pattern.
// It is a value type: assigning or passing a Palette copies its colors.
type Palette struct {
	White Color `json:"white" yaml:"white"`
	Gray  Color `json:"gray" yaml:"gray"`
	Black Color `json:"black" yaml:"black"`
}

// DefaultPalette is the palette a new editing session starts with.
func DefaultPalette() Palette {
	return Palette{
		White: RGB(1, 1, 1),
		Gray:  RGB(0.5, 0.5, 0.5),
		Black: RGB(0, 0, 0),
	}
}

func (p Palette) Get(slot Slot) Color {
	switch slot {
	case SlotGray:
		return p.Gray
	case SlotBlack:
		return p.Black
	default:
		return p.White
	}
}

// Set replaces one slot. Channels outside [0,1] are rejected with ErrInvalidColorChannel.
func (p *Palette) Set(slot Slot, c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%s %s: %w", slot, c, ErrInvalidColorChannel)
	}
	switch slot {
	case SlotWhite:
		p.White = c
	case SlotGray:
		p.Gray = c
	case SlotBlack:
		p.Black = c
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}
	return nil
}

func (p Palette) Validate() error {
	for _, slot := range Slots {
		if c := p.Get(slot); !c.Valid() {
			return fmt.Errorf("%s %s: %w", slot, c, ErrInvalidColorChannel)
		}
	}
	return nil
}
