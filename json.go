package rgba

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// colorDoc is the keyed form of Color accepted when decoding.
type colorDoc struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// MarshalJSON encodes color as [r, g, b, a].
func (c Color) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 17)
	out = append(out, '[')
	for i, v := range [4]uint8{c.R, c.G, c.B, c.A} {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}

	return append(out, ']'), nil
}

// UnmarshalJSON decodes [r, g, b, a]. The keyed form {"r", "g", "b", "a"}
// is accepted as well.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var doc colorDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		*c = Color(doc)
		return nil
	}

	var vals []int64
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	return c.setChannels(vals)
}

// MarshalYAML encodes color as the sequence [r, g, b, a].
func (c Color) MarshalYAML() (interface{}, error) {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}, nil
}

// UnmarshalYAML decodes a sequence [r, g, b, a] or a mapping with keys
// r, g, b, a.
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var vals []int64
	if err := unmarshal(&vals); err == nil {
		return c.setChannels(vals)
	}

	var doc colorDoc
	if err := unmarshal(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	*c = Color(doc)
	return nil
}

// setChannels assigns 4 channel values in R, G, B, A order.
func (c *Color) setChannels(vals []int64) error {
	if len(vals) != 4 {
		return fmt.Errorf("%w: got %d channels, want 4", ErrInvalidLength, len(vals))
	}

	var raw [4]uint8
	for i, v := range vals {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: channel %d value %d out of range [0,255]", ErrParse, i, v)
		}
		raw[i] = uint8(v)
	}

	*c = RGBA(raw[0], raw[1], raw[2], raw[3])
	return nil
}
