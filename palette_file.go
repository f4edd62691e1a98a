package camo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the YAML form of a palette. Colors are either "#rrggbb" or [r, g, b].
type paletteFile struct {
	White yamlColor `yaml:"white"`
	Gray  yamlColor `yaml:"gray"`
	Black yamlColor `yaml:"black"`
}

type yamlColor struct {
	Color
	set bool
}

func (c *yamlColor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		col, err := ColorFromHex(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %q is not a hex color", value.Line, value.Value)
		}
		c.Color, c.set = col, true
		return nil
	case yaml.SequenceNode:
		var values []float64
		if err := value.Decode(&values); err != nil {
			return err
		}
		if len(values) != 3 {
			return fmt.Errorf("line %d: expected 3 channels, got %d", value.Line, len(values))
		}
		c.Color, c.set = RGB(values[0], values[1], values[2]), true
		return nil
	}
	return fmt.Errorf("line %d: expected a hex string or [r, g, b]", value.Line)
}

func (c yamlColor) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range c.Array() {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: formatChannel(v),
		})
	}
	return node, nil
}

// LoadPalette reads a palette from a YAML file or a JSON export document,
// chosen by extension.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Deserialize(data)
	case ".yaml", ".yml":
		return parsePaletteYAML(data)
	}
	return Palette{}, fmt.Errorf("unsupported palette file %s", path)
}

func parsePaletteYAML(data []byte) (Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Palette{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var p Palette
	for slot, c := range map[Slot]yamlColor{SlotWhite: f.White, SlotGray: f.Gray, SlotBlack: f.Black} {
		if !c.set {
			return Palette{}, fmt.Errorf("%w: missing %s", ErrMalformedDocument, slot)
		}
		if err := p.Set(slot, c.Color); err != nil {
			return Palette{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	return p, nil
}

// SavePalette writes p as YAML.
func SavePalette(path string, p Palette) error {
	data, err := yaml.Marshal(paletteFile{
		White: yamlColor{Color: p.White},
		Gray:  yamlColor{Color: p.Gray},
		Black: yamlColor{Color: p.Black},
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
