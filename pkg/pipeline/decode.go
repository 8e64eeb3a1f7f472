package pipeline

import (
	"context"
	"io"

	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/observability"
)

// Decode reads a document in the given encoding.
func Decode(ctx context.Context, r io.Reader, format document.Format) (*document.Document, error) {
	done := observability.TraceDecode(ctx, string(format))
	doc, err := document.Read(r, format)
	done(countNodes(doc), err)
	return doc, err
}

// DecodeFile reads a document from disk, picking the encoding from the
// file extension.
func DecodeFile(ctx context.Context, path string) (*document.Document, error) {
	format := document.FormatFromPath(path)
	done := observability.TraceDecode(ctx, string(format))
	doc, err := document.ReadFile(path)
	done(countNodes(doc), err)
	return doc, err
}

func countNodes(doc *document.Document) int {
	if doc == nil {
		return 0
	}
	return countSpec(doc.Content)
}

func countSpec(n document.NodeSpec) int {
	if n.Type == "" {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += countSpec(c)
	}
	if n.Body != nil {
		count += countSpec(*n.Body)
	}
	return count
}
