package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/stackbox/pkg/size"
)

func newDefaultLoader(t *testing.T) *Loader {
	t.Helper()
	l := NewLoader()
	if err := l.LoadDefault(); err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	return l
}

func TestLoadDefault(t *testing.T) {
	l := newDefaultLoader(t)
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	f, ok := l.Face(1)
	if !ok || f.Name != "Go Bold" {
		t.Errorf("Face(1) = %v, want Go Bold", f)
	}
	if _, ok := l.Face(3); ok {
		t.Error("Face(3) should be out of range")
	}
}

func TestQueryClasses(t *testing.T) {
	l := newDefaultLoader(t)

	tests := []struct {
		name    string
		classes []Class
		want    int
	}{
		{"no classes", nil, 0},
		{"regular", []Class{SansSerif, Regular}, 0},
		{"bold", []Class{Bold}, 1},
		{"mono", []Class{Monospace}, 2},
		{"unknown combination falls back", []Class{Serif}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Query('A', tt.classes...)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Query() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQueryNoGlyph(t *testing.T) {
	l := newDefaultLoader(t)
	_, err := l.Query('中')
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("Query('中') error = %v, want ErrNoGlyph", err)
	}

	empty := NewLoader()
	if _, err := empty.Query('a'); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("empty loader Query() error = %v, want ErrNoGlyph", err)
	}
}

func TestQueryCache(t *testing.T) {
	l := newDefaultLoader(t)
	for i := 0; i < 3; i++ {
		if _, err := l.Query('x', Bold); err != nil {
			t.Fatalf("Query() error: %v", err)
		}
	}
	s := l.Stats()
	if s.Misses != 1 || s.Hits != 2 {
		t.Errorf("Stats() = %+v, want 1 miss and 2 hits", s)
	}
	if s.Fonts != 3 {
		t.Errorf("Stats().Fonts = %d, want 3", s.Fonts)
	}
}

func TestQueryConcurrent(t *testing.T) {
	l := newDefaultLoader(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range "concurrent layout" {
				if _, err := l.Query(r, Monospace); err != nil {
					t.Errorf("Query(%q) error: %v", r, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestAdvance(t *testing.T) {
	l := newDefaultLoader(t)

	mono, err := l.Query('i', Monospace)
	if err != nil {
		t.Fatal(err)
	}
	i, err := l.Advance(mono, 'i', size.Pt(10))
	if err != nil {
		t.Fatal(err)
	}
	m, err := l.Advance(mono, 'm', size.Pt(10))
	if err != nil {
		t.Fatal(err)
	}
	if i != m {
		t.Errorf("monospace advances differ: i=%v m=%v", i, m)
	}
	if i <= 0 {
		t.Errorf("Advance() = %v, want positive", i)
	}

	big, err := l.Advance(mono, 'i', size.Pt(20))
	if err != nil {
		t.Fatal(err)
	}
	if big <= i {
		t.Errorf("Advance at 20pt = %v, want more than %v", big, i)
	}

	if _, err := l.Advance(0, '中', size.Pt(10)); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("Advance('中') error = %v, want ErrNoGlyph", err)
	}
	if _, err := l.Advance(9, 'a', size.Pt(10)); err == nil {
		t.Error("Advance() with bad index should fail")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Custom.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	idx, err := l.LoadFile(path, Serif)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	f, _ := l.Face(idx)
	if f.Name != "Custom" {
		t.Errorf("Name = %q, want Custom", f.Name)
	}

	if _, err := l.LoadFile(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Error("LoadFile() on missing file should fail")
	}
	if _, err := l.LoadBytes("junk", []byte("not a font")); err == nil {
		t.Error("LoadBytes() on junk should fail")
	}
}

func TestParseClass(t *testing.T) {
	if c, err := ParseClass(" Bold "); err != nil || c != Bold {
		t.Errorf("ParseClass(Bold) = %v, %v", c, err)
	}
	if _, err := ParseClass("fancy"); err == nil {
		t.Error("ParseClass(fancy) should fail")
	}
}

func TestLineHeight(t *testing.T) {
	s := DefaultTextStyle()
	if got := s.LineHeight(); got.ToPt() < 13.19 || got.ToPt() > 13.21 {
		t.Errorf("LineHeight() = %v, want 13.2pt", got)
	}
}
