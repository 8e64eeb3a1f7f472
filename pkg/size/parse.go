package size

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a length such as "12pt", "2.5cm", "30mm" or "1in".
// A bare number is taken as points.
func Parse(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty length")
	}

	units := []struct {
		suffix string
		conv   func(float64) Size
	}{
		{"pt", Pt},
		{"mm", Mm},
		{"cm", Cm},
		{"in", In},
	}

	for _, u := range units {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
			if err != nil {
				return 0, fmt.Errorf("invalid length %q: %w", s, err)
			}
			return u.conv(v), nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: unknown unit", s)
	}
	return Pt(v), nil
}
