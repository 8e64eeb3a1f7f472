package document

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/errors"
)

// Format is a document encoding.
type Format string

// Supported document encodings.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension. Anything that is
// not .toml is read as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatTOML:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", s)
}

// Document is a decoded layout document.
type Document struct {
	Spaces  []SpaceSpec `json:"spaces" toml:"spaces"`
	Axes    AxesSpec    `json:"axes" toml:"axes"`
	Style   StyleSpec   `json:"style" toml:"style"`
	Fonts   []FontSpec  `json:"fonts,omitempty" toml:"fonts"`
	Content NodeSpec    `json:"content" toml:"content"`

	// dir resolves font paths; empty for documents not read from a file.
	dir string
}

// SpaceSpec describes one or more identical spaces.
type SpaceSpec struct {
	Width   Length  `json:"width" toml:"width"`
	Height  Length  `json:"height" toml:"height"`
	Padding Padding `json:"padding" toml:"padding"`
	Shrink  bool    `json:"shrink,omitempty" toml:"shrink"`
	// Repeat is how many spaces of this kind follow each other. Zero means one.
	Repeat int `json:"repeat,omitempty" toml:"repeat"`
}

// AxesSpec names the stacking axes and their alignments. Empty fields take
// the defaults: ltr, ttb and origin alignment.
type AxesSpec struct {
	Primary        string `json:"primary,omitempty" toml:"primary"`
	Secondary      string `json:"secondary,omitempty" toml:"secondary"`
	PrimaryAlign   string `json:"primary_align,omitempty" toml:"primary_align"`
	SecondaryAlign string `json:"secondary_align,omitempty" toml:"secondary_align"`
}

func (a AxesSpec) isZero() bool { return a == AxesSpec{} }

// StyleSpec overrides parts of the default text style.
type StyleSpec struct {
	FontSize    Length   `json:"font_size,omitempty" toml:"font_size"`
	LineSpacing float64  `json:"line_spacing,omitempty" toml:"line_spacing"`
	Classes     []string `json:"classes,omitempty" toml:"classes"`
}

// FontSpec is an extra font file, relative to the document.
type FontSpec struct {
	Path    string   `json:"path" toml:"path"`
	Classes []string `json:"classes,omitempty" toml:"classes"`
}

// NodeSpec is one node of the content tree. Type selects which of the other
// fields apply: box (width, height, debug), text (text, size, classes),
// space (amount), stack (children, axes, shrink) or repeat (body).
type NodeSpec struct {
	Type     string     `json:"type" toml:"type"`
	Width    Length     `json:"width,omitempty" toml:"width"`
	Height   Length     `json:"height,omitempty" toml:"height"`
	Debug    bool       `json:"debug,omitempty" toml:"debug"`
	Text     string     `json:"text,omitempty" toml:"text"`
	Size     Length     `json:"size,omitempty" toml:"size"`
	Classes  []string   `json:"classes,omitempty" toml:"classes"`
	Amount   Length     `json:"amount,omitempty" toml:"amount"`
	Children []NodeSpec `json:"children,omitempty" toml:"children"`
	Axes     *AxesSpec  `json:"axes,omitempty" toml:"axes"`
	Shrink   bool       `json:"shrink,omitempty" toml:"shrink"`
	Body     *NodeSpec  `json:"body,omitempty" toml:"body"`
}

// Read decodes a document. Unknown fields are rejected.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		for _, key := range md.Undecoded() {
			// Padding tables are consumed by Padding.UnmarshalTOML.
			if len(key) >= 2 && key[len(key)-2] == "padding" {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown field %q", key.String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	return &doc, nil
}

// ReadFile reads a document from disk. The encoding follows the extension
// and font paths resolve against the file's directory.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, err
	}
	defer f.Close()

	doc, err := Read(f, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// Dir returns the directory font paths resolve against.
func (d *Document) Dir() string { return d.dir }

// Hash returns a stable digest of the decoded document, used in cache keys.
// Documents that decode to the same values hash the same regardless of
// their encoding.
func (d *Document) Hash() string {
	data, _ := json.Marshal([]any{d, d.dir})
	return cache.Hash(data)
}
