package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/stackbox/pkg/size"
)

func sampleLayout() Layout {
	return Layout{
		Dimensions: size.New2D(10, 20.5),
		Actions: []Action{
			MoveAbsolute{Pos: size.New2D(1, 2)},
			SetFont{Index: 0, Size: 11},
			WriteText{Text: "hi"},
			DebugBox{Pos: size.New2D(0, 0), Size: size.New2D(5, 5)},
		},
	}
}

func TestLayoutSerialize(t *testing.T) {
	want := strings.Join([]string{
		"10.0000 20.5000",
		"4",
		"m 1.0000 2.0000",
		"f 0 11.0000",
		"w hi",
		"b 0.0000 0.0000 5.0000 5.0000",
		"",
	}, "\n")

	var buf bytes.Buffer
	if err := sampleLayout().Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestMultiLayoutSerialize(t *testing.T) {
	var m MultiLayout
	m.Add(Empty(1, 2))
	m.Add(Empty(3.25, 4))

	var buf bytes.Buffer
	if err := m.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	want := "2\n1.0000 2.0000\n0\n3.2500 4.0000\n0\n"
	if got := buf.String(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}

	// Same value, same bytes.
	var again bytes.Buffer
	_ = m.Serialize(&again)
	if again.String() != buf.String() {
		t.Error("Serialize() is not deterministic")
	}
}

func TestMultiLayoutSingle(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"empty", 0, true},
		{"one", 1, false},
		{"two", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MultiLayout
			for i := 0; i < tt.count; i++ {
				m.Add(Empty(size.Size(i+1), 1))
			}
			l, err := m.Single()
			if tt.wantErr {
				if !errors.Is(err, ErrNotSingle) {
					t.Errorf("Single() error = %v, want ErrNotSingle", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Single() error: %v", err)
			}
			if l.Dimensions != size.New2D(1, 1) {
				t.Errorf("Single() = %v", l.Dimensions)
			}
		})
	}
}

func TestMultiLayoutAccessors(t *testing.T) {
	var m MultiLayout
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for zero value")
	}
	m.Add(sampleLayout())
	m.Add(Empty(2, 2))

	if m.Len() != 2 || m.IsEmpty() {
		t.Errorf("Len() = %d, IsEmpty() = %v", m.Len(), m.IsEmpty())
	}
	if got := m.ActionCount(); got != 4 {
		t.Errorf("ActionCount() = %d, want 4", got)
	}
	dims := m.Dimensions()
	if len(dims) != 2 || dims[1] != size.New2D(2, 2) {
		t.Errorf("Dimensions() = %v", dims)
	}
	if !Empty(1, 1).DebugRender {
		t.Error("Empty() should request a debug outline")
	}
}

func TestMultiLayoutJSON(t *testing.T) {
	var m MultiLayout
	m.Add(sampleLayout())
	m.Add(Empty(3, 4))

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"op":"text"`)) {
		t.Errorf("Marshal() = %s, missing text op", data)
	}

	var back MultiLayout
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	var want, got bytes.Buffer
	_ = m.Serialize(&want)
	_ = back.Serialize(&got)
	if got.String() != want.String() {
		t.Errorf("decoded layout dumps as\n%s\nwant\n%s", got.String(), want.String())
	}
	if !back.Layouts[1].DebugRender {
		t.Error("debug flag lost in JSON")
	}
}

func TestMultiLayoutUnmarshalUnknownOp(t *testing.T) {
	var m MultiLayout
	err := json.Unmarshal([]byte(`{"pages":[{"width":1,"height":1,"actions":[{"op":"spin"}]}]}`), &m)
	if err == nil {
		t.Error("Unmarshal() should reject unknown ops")
	}
}
