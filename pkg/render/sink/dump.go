package sink

import (
	"bytes"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// Dump returns the text serialization of m.
func Dump(m layout.MultiLayout) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
