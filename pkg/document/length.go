package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Length is a size read from a document: a number of points or a string with
// a unit.
type Length size.Size

// Size returns the length as a size.
func (l Length) Size() size.Size { return size.Size(l) }

// MarshalJSON writes the length as a number of points.
func (l Length) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(l))
}

func (l *Length) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return l.set(v)
}

func (l *Length) UnmarshalTOML(v any) error {
	return l.set(v)
}

func (l *Length) set(v any) error {
	s, err := lengthOf(v)
	if err != nil {
		return err
	}
	*l = Length(s)
	return nil
}

func lengthOf(v any) (size.Size, error) {
	switch v := v.(type) {
	case float64:
		return size.Pt(v), nil
	case int64:
		return size.Pt(float64(v)), nil
	case string:
		return size.Parse(v)
	default:
		return 0, fmt.Errorf("invalid length %v (%T)", v, v)
	}
}

// Padding is the inner margin of a space. It decodes from a single length,
// applied to every side, or from a table with left, top, right and bottom.
type Padding struct {
	Left   Length `json:"left" toml:"left"`
	Top    Length `json:"top" toml:"top"`
	Right  Length `json:"right" toml:"right"`
	Bottom Length `json:"bottom" toml:"bottom"`
}

// Box returns the padding as a size box.
func (p Padding) Box() size.SizeBox {
	return size.SizeBox{
		Left:   p.Left.Size(),
		Top:    p.Top.Size(),
		Right:  p.Right.Size(),
		Bottom: p.Bottom.Size(),
	}
}

func (p *Padding) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain Padding
		var v plain
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Padding(v)
		return nil
	}
	var l Length
	if err := l.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = uniform(l)
	return nil
}

func (p *Padding) UnmarshalTOML(v any) error {
	table, ok := v.(map[string]any)
	if !ok {
		var l Length
		if err := l.set(v); err != nil {
			return err
		}
		*p = uniform(l)
		return nil
	}

	*p = Padding{}
	sides := map[string]*Length{"left": &p.Left, "top": &p.Top, "right": &p.Right, "bottom": &p.Bottom}
	for k, raw := range table {
		side, ok := sides[k]
		if !ok {
			return fmt.Errorf("unknown padding side %q", k)
		}
		if err := side.set(raw); err != nil {
			return fmt.Errorf("padding %s: %w", k, err)
		}
	}
	return nil
}

func uniform(l Length) Padding {
	return Padding{Left: l, Top: l, Right: l, Bottom: l}
}
