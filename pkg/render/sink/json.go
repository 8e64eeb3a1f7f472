package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
)

// JSONOption configures JSON rendering via [JSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	loader *fonts.Loader
	passID string
	indent bool
}

// WithJSONFonts records the names of the loaded fonts so that font indices
// in the actions can be resolved.
func WithJSONFonts(l *fonts.Loader) JSONOption { return func(r *jsonRenderer) { r.loader = l } }

// WithJSONPassID records the layout pass that produced the result.
func WithJSONPassID(id string) JSONOption { return func(r *jsonRenderer) { r.passID = id } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	PassID string             `json:"pass_id,omitempty"`
	Fonts  []string           `json:"fonts,omitempty"`
	Layout layout.MultiLayout `json:"layout"`
}

// JSON encodes m together with the optional metadata.
func JSON(m layout.MultiLayout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{PassID: r.passID, Layout: m}
	if r.loader != nil {
		out.Fonts = fontNames(r.loader)
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ReadJSON decodes output written by [JSON].
func ReadJSON(data []byte) (layout.MultiLayout, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return layout.MultiLayout{}, fmt.Errorf("decode layout json: %w", err)
	}
	return out.Layout, nil
}

func fontNames(l *fonts.Loader) []string {
	names := make([]string, l.Len())
	for i := range names {
		if f, ok := l.Face(i); ok {
			names[i] = f.Name
		}
	}
	return names
}
