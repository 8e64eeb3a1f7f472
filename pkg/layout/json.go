package layout

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Action opcodes in the JSON form.
const (
	opMove = "move"
	opFont = "font"
	opText = "text"
	opBox  = "box"
)

type jsonAction struct {
	Op     string  `json:"op"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Font   int     `json:"font,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Text   string  `json:"text,omitempty"`
}

type jsonLayout struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Debug   bool         `json:"debug,omitempty"`
	Actions []jsonAction `json:"actions"`
}

type jsonMultiLayout struct {
	Pages []jsonLayout `json:"pages"`
}

// MarshalJSON encodes the boxes as {"pages": [...]} with dimensions in points.
func (m MultiLayout) MarshalJSON() ([]byte, error) {
	out := jsonMultiLayout{Pages: make([]jsonLayout, len(m.Layouts))}
	for i, l := range m.Layouts {
		page := jsonLayout{
			Width:   l.Dimensions.X.ToPt(),
			Height:  l.Dimensions.Y.ToPt(),
			Debug:   l.DebugRender,
			Actions: make([]jsonAction, 0, len(l.Actions)),
		}
		for _, a := range l.Actions {
			ja, err := encodeAction(a)
			if err != nil {
				return nil, err
			}
			page.Actions = append(page.Actions, ja)
		}
		out.Pages[i] = page
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (m *MultiLayout) UnmarshalJSON(data []byte) error {
	var in jsonMultiLayout
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	m.Layouts = make([]Layout, len(in.Pages))
	for i, p := range in.Pages {
		l := Layout{
			Dimensions:  size.New2D(size.Pt(p.Width), size.Pt(p.Height)),
			DebugRender: p.Debug,
		}
		for _, ja := range p.Actions {
			a, err := decodeAction(ja)
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			l.Actions = append(l.Actions, a)
		}
		m.Layouts[i] = l
	}
	return nil
}

func encodeAction(a Action) (jsonAction, error) {
	switch a := a.(type) {
	case MoveAbsolute:
		return jsonAction{Op: opMove, X: a.Pos.X.ToPt(), Y: a.Pos.Y.ToPt()}, nil
	case SetFont:
		return jsonAction{Op: opFont, Font: a.Index, Size: a.Size.ToPt()}, nil
	case WriteText:
		return jsonAction{Op: opText, Text: a.Text}, nil
	case DebugBox:
		return jsonAction{
			Op: opBox,
			X:  a.Pos.X.ToPt(), Y: a.Pos.Y.ToPt(),
			Width: a.Size.X.ToPt(), Height: a.Size.Y.ToPt(),
		}, nil
	}
	return jsonAction{}, fmt.Errorf("unsupported action %T", a)
}

func decodeAction(ja jsonAction) (Action, error) {
	switch ja.Op {
	case opMove:
		return MoveAbsolute{Pos: size.New2D(size.Pt(ja.X), size.Pt(ja.Y))}, nil
	case opFont:
		return SetFont{Index: ja.Font, Size: size.Pt(ja.Size)}, nil
	case opText:
		return WriteText{Text: ja.Text}, nil
	case opBox:
		return DebugBox{
			Pos:  size.New2D(size.Pt(ja.X), size.Pt(ja.Y)),
			Size: size.New2D(size.Pt(ja.Width), size.Pt(ja.Height)),
		}, nil
	}
	return nil, fmt.Errorf("unknown action op %q", ja.Op)
}
