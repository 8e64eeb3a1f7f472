package size

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestUnits(t *testing.T) {
	tests := []struct {
		name string
		got  Size
		want float64
	}{
		{"points", Pt(12), 12},
		{"inch", In(1), 72},
		{"centimeter", Cm(2.54), 72},
		{"millimeter", Mm(25.4), 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got.ToPt(), tt.want) {
				t.Errorf("ToPt() = %v, want %v", tt.got.ToPt(), tt.want)
			}
		})
	}

	if !approx(In(2).ToIn(), 2) {
		t.Errorf("ToIn() = %v, want 2", In(2).ToIn())
	}
	if !approx(Mm(210).ToMm(), 210) {
		t.Errorf("ToMm() = %v, want 210", Mm(210).ToMm())
	}
	if !approx(Cm(3).ToCm(), 3) {
		t.Errorf("ToCm() = %v, want 3", Cm(3).ToCm())
	}
}

func TestMaxMin(t *testing.T) {
	if got := Max(3, 5); got != 5 {
		t.Errorf("Max(3, 5) = %v, want 5", got)
	}
	if got := Min(3, 5); got != 3 {
		t.Errorf("Min(3, 5) = %v, want 3", got)
	}
}

func TestSize2DArithmetic(t *testing.T) {
	a := New2D(10, 20)
	b := New2D(3, 4)

	if got := a.Add(b); got != New2D(13, 24) {
		t.Errorf("Add() = %v, want [13pt, 24pt]", got)
	}
	if got := a.Sub(b); got != New2D(7, 16) {
		t.Errorf("Sub() = %v, want [7pt, 16pt]", got)
	}
	if got := a.Neg(); got != New2D(-10, -20) {
		t.Errorf("Neg() = %v, want [-10pt, -20pt]", got)
	}
	if got := a.Swap(); got != New2D(20, 10) {
		t.Errorf("Swap() = %v, want [20pt, 10pt]", got)
	}
	if got := a.Scale(0.5); got != New2D(5, 10) {
		t.Errorf("Scale() = %v, want [5pt, 10pt]", got)
	}
	if got := WithX(4); got != New2D(4, 0) {
		t.Errorf("WithX() = %v", got)
	}
	if got := WithY(4); got != New2D(0, 4) {
		t.Errorf("WithY() = %v", got)
	}
}

func TestFits(t *testing.T) {
	area := New2D(100, 50)
	tests := []struct {
		name  string
		other Size2D
		want  bool
	}{
		{"smaller", New2D(10, 10), true},
		{"exact", New2D(100, 50), true},
		{"zero", New2D(0, 0), true},
		{"too wide", New2D(101, 10), false},
		{"too tall", New2D(10, 50.0001), false},
		{"rounding", New2D(100, 50+Tolerance/2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := area.Fits(tt.other); got != tt.want {
				t.Errorf("Fits(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestFitsUnitRounding(t *testing.T) {
	tests := []struct {
		name  string
		area  Size2D
		parts []Size
	}{
		{"millimeters", New2D(10, Mm(21)), []Size{Mm(7), Mm(7), Mm(7)}},
		{"decimal points", New2D(10, 0.3), []Size{0.1, 0.1, 0.1}},
		{"centimeters", New2D(10, Cm(0.9)), []Size{Cm(0.3), Cm(0.3), Cm(0.3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum Size
			for _, p := range tt.parts {
				sum += p
			}
			if !tt.area.Fits(New2D(1, sum)) {
				t.Errorf("Fits(%v) = false for an exact fit of %v", sum, tt.area.Y)
			}
		})
	}
}

func TestExceeds(t *testing.T) {
	if Size(10).Exceeds(10) {
		t.Error("Exceeds(equal) = true, want false")
	}
	if !Size(10.001).Exceeds(10) {
		t.Error("Exceeds(10.001, 10) = false, want true")
	}
}

func TestPadding(t *testing.T) {
	p := SizeBox{Left: 1, Top: 2, Right: 3, Bottom: 4}
	s := New2D(20, 30)

	if got := s.Unpadded(p); got != New2D(16, 24) {
		t.Errorf("Unpadded() = %v, want [16pt, 24pt]", got)
	}
	if got := s.Unpadded(p).Padded(p); got != s {
		t.Errorf("Padded(Unpadded()) = %v, want %v", got, s)
	}
	if got := Uniform(5); got != (SizeBox{5, 5, 5, 5}) {
		t.Errorf("Uniform(5) = %v", got)
	}
	if got := Zero(); got != (SizeBox{}) {
		t.Errorf("Zero() = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := New2D(1.5, 2).String(); got != "[1.5pt, 2pt]" {
		t.Errorf("String() = %q, want %q", got, "[1.5pt, 2pt]")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12", 12, false},
		{"12pt", 12, false},
		{" 1in ", 72, false},
		{"2.54cm", 72, false},
		{"25.4mm", 72, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12px", 0, true},
		{"xpt", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !approx(got.ToPt(), tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got.ToPt(), tt.want)
		}
	}
}
