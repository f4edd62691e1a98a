package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsLoaded(t *testing.T) {
	require.NotEmpty(t, Presets)
	for key, p := range Presets {
		assert.Equal(t, Key(p.Name), key)
		for _, c := range []PresetColor{p.White, p.Gray, p.Black} {
			rgb, err := c.RGB()
			require.NoError(t, err, "preset %s", p.Name)
			for _, v := range rgb {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("Woodland"), Key("  WOODLAND "))
	assert.Equal(t, Key("woodland"), Key("wOoDlAnD"))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "Woodland")
	assert.IsNonDecreasing(t, names)
}

func TestPresetColorRGB(t *testing.T) {
	rgb, err := PresetColor{Hex: "#ff0000"}.RGB()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 0, 0}, rgb)

	rgb, err = PresetColor{Cmyk: []float64{0, 0, 0, 50}}.RGB()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, rgb)

	_, err = PresetColor{Lab: []float64{50}}.RGB()
	assert.Error(t, err)

	_, err = PresetColor{Hex: "nothex"}.RGB()
	assert.Error(t, err)
}
