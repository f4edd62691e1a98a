package camo

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ExportDocument is the JSON document consumed by the real-time engine.
// Colors are copied by value, later edits to the source palette do not
// reach a document that has already been built.
type ExportDocument struct {
	WhiteColor channels `json:"whiteColor"`
	GrayColor  channels `json:"grayColor"`
	BlackColor channels `json:"blackColor"`
}

// channels always encodes its numbers with a decimal point, e.g. 1.0 rather than 1.
type channels [3]float64

func (c channels) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("channel %d is not finite: %w", i, ErrInvalidColorChannel)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(formatChannel(v))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// formatChannel writes the shortest decimal that parses back to v.
func formatChannel(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func NewExportDocument(p Palette) ExportDocument {
	return ExportDocument{
		WhiteColor: p.White.Array(),
		GrayColor:  p.Gray.Array(),
		BlackColor: p.Black.Array(),
	}
}

func (d ExportDocument) Palette() Palette {
	return Palette{
		White: colorFromArray(d.WhiteColor),
		Gray:  colorFromArray(d.GrayColor),
		Black: colorFromArray(d.BlackColor),
	}
}

// Serialize encodes the palette as an indented export document.
// The same palette always produces the same bytes. Channels outside
// [0,1] fail with ErrInvalidColorChannel, so every written document
// can be read back by Deserialize.
func Serialize(p Palette) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(NewExportDocument(p), "", "    ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Deserialize decodes an export document. Any structural problem or
// channel outside [0,1] fails with ErrMalformedDocument and no palette
// is returned. Keys are matched exactly, unknown keys are ignored.
func Deserialize(data []byte) (Palette, error) {
	// Values stay undecoded so missing keys and wrong arity can be told apart.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Palette{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var doc ExportDocument
	fields := []struct {
		key string
		raw json.RawMessage
		dst *channels
	}{
		{"whiteColor", raw["whiteColor"], &doc.WhiteColor},
		{"grayColor", raw["grayColor"], &doc.GrayColor},
		{"blackColor", raw["blackColor"], &doc.BlackColor},
	}
	for _, f := range fields {
		c, err := decodeChannels(f.raw)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, f.key, err)
		}
		*f.dst = c
	}

	return doc.Palette(), nil
}

func decodeChannels(raw json.RawMessage) (channels, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return channels{}, fmt.Errorf("missing key")
	}
	// Pointers expose null elements, which would otherwise decode as 0.
	var values []*float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return channels{}, fmt.Errorf("expected an array of numbers: %v", err)
	}
	if len(values) != 3 {
		return channels{}, fmt.Errorf("expected 3 channels, got %d", len(values))
	}
	var c channels
	for i, v := range values {
		if v == nil {
			return channels{}, fmt.Errorf("channel %d is null", i)
		}
		if *v < 0 || *v > 1 {
			return channels{}, fmt.Errorf("channel %d = %g: %w", i, *v, ErrInvalidColorChannel)
		}
		c[i] = *v
	}
	return c, nil
}

// WriteDocument serializes p into w.
func WriteDocument(w io.Writer, p Palette) error {
	data, err := Serialize(p)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadDocument reads a whole export document from r.
func ReadDocument(r io.Reader) (Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Palette{}, err
	}
	return Deserialize(data)
}

func (d *ExportDocument) Scan(src interface{}) error {
	return JsonScan(src, d)
}

func (d ExportDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}
