package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/stackbox/pkg/size"
)

// ErrNoGlyph is returned by Query when no loaded font covers a rune.
var ErrNoGlyph = errors.New("no font covers rune")

// Face is one loaded font together with the classes it belongs to.
type Face struct {
	Name    string
	Classes []Class
	font    *sfnt.Font
}

// HasClasses reports whether the face carries every class in want.
func (f *Face) HasClasses(want []Class) bool {
	for _, c := range want {
		if !slices.Contains(f.Classes, c) {
			return false
		}
	}
	return true
}

// Stats reports cache effectiveness.
type Stats struct {
	Fonts  int
	Hits   uint64
	Misses uint64
}

// Loader is a registry of fonts with a memoized coverage lookup.
// Fonts must be loaded before layout starts; queries are safe for concurrent use.
type Loader struct {
	mu     sync.RWMutex
	faces  []*Face
	lookup map[string]int
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{lookup: make(map[string]int)}
}

// LoadDefault registers the bundled Go fonts: Go Regular, Go Bold and Go Mono.
func (l *Loader) LoadDefault() error {
	defaults := []struct {
		name    string
		data    []byte
		classes []Class
	}{
		{"Go Regular", goregular.TTF, []Class{SansSerif, Regular}},
		{"Go Bold", gobold.TTF, []Class{SansSerif, Bold}},
		{"Go Mono", gomono.TTF, []Class{Monospace, Regular}},
	}
	for _, d := range defaults {
		if _, err := l.LoadBytes(d.name, d.data, d.classes...); err != nil {
			return err
		}
	}
	return nil
}

// LoadBytes parses data as an OpenType/TrueType font and appends it.
// It returns the index of the new font.
func (l *Loader) LoadBytes(name string, data []byte, classes ...Class) (int, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse font %s: %w", name, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.faces = append(l.faces, &Face{Name: name, Classes: classes, font: f})
	clear(l.lookup)
	return len(l.faces) - 1, nil
}

// LoadFile reads and registers a font file. The file name without extension
// becomes the font name.
func (l *Loader) LoadFile(path string, classes ...Class) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return l.LoadBytes(name, data, classes...)
}

// Len returns the number of loaded fonts.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.faces)
}

// Face returns the font at index.
func (l *Loader) Face(index int) (*Face, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.faces) {
		return nil, false
	}
	return l.faces[index], true
}

// Query returns the index of the first font that covers r. Fonts carrying all
// of classes are preferred; any other covering font is the fallback.
func (l *Loader) Query(r rune, classes ...Class) (int, error) {
	key := cacheKey(r, classes)

	l.mu.RLock()
	idx, ok := l.lookup[key]
	l.mu.RUnlock()
	if ok {
		l.hits.Add(1)
		return idx, nil
	}
	l.misses.Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()

	idx = -1
	for pass := 0; pass < 2 && idx < 0; pass++ {
		for i, f := range l.faces {
			if pass == 0 && !f.HasClasses(classes) {
				continue
			}
			if covers(f.font, r) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	l.lookup[key] = idx
	return idx, nil
}

// Advance returns the horizontal advance of r in the font at index when set
// at the given size.
func (l *Loader) Advance(index int, r rune, sz size.Size) (size.Size, error) {
	face, ok := l.Face(index)
	if !ok {
		return 0, fmt.Errorf("font index %d out of range", index)
	}

	var buf sfnt.Buffer
	gi, err := face.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0, err
	}
	if gi == 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrNoGlyph, r, face.Name)
	}

	ppem := fixed.Int26_6(sz.ToPt() * 64)
	adv, err := face.font.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
	if err != nil {
		return 0, err
	}
	return size.Pt(float64(adv) / 64), nil
}

// Stats returns the lookup cache counters.
func (l *Loader) Stats() Stats {
	return Stats{
		Fonts:  l.Len(),
		Hits:   l.hits.Load(),
		Misses: l.misses.Load(),
	}
}

func covers(f *sfnt.Font, r rune) bool {
	var buf sfnt.Buffer
	gi, err := f.GlyphIndex(&buf, r)
	return err == nil && gi != 0
}

func cacheKey(r rune, classes []Class) string {
	var b strings.Builder
	b.WriteRune(r)
	for _, c := range classes {
		b.WriteByte('|')
		b.WriteString(string(c))
	}
	return b.String()
}
