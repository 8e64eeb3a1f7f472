package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/pipeline"
	"github.com/matzehuels/stackbox/pkg/render/tree"
)

// Tree output formats.
const (
	treeFormatDOT = "dot"
	treeFormatSVG = "svg"
	treeFormatPDF = "pdf"
	treeFormatPNG = "png"
)

// treeCommand creates the tree command, which draws a document's content tree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		flags       renderFlags
		output      string
		format      string
		sizes       bool
		horizontal  bool
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "tree [document]",
		Short: "Draw the content tree of a document with Graphviz",
		Long: `Draw the content tree of a document.

Each node is labeled with its kind; --sizes adds the boxes the node produces
when laid out on its own in the document's spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, treeFormatDOT, treeFormatSVG, treeFormatPDF, treeFormatPNG); err != nil {
				return err
			}
			ctx := cmd.Context()
			opts := flags.options(cmd, c.config)

			doc, err := readDocument(ctx, args[0], inputFormat)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			root, lctx, err := runner.Prepare(doc, opts)
			if err != nil {
				return err
			}

			treeOpts := tree.Options{Horizontal: horizontal}
			if sizes {
				treeOpts.Annotate = sizeAnnotator(lctx)
			}
			dot := tree.ToDOT(root, treeOpts)

			data := []byte(dot)
			if format != treeFormatDOT {
				err = spin(ctx, "Drawing tree...", func() (err error) {
					data, err = renderTree(ctx, dot, format, opts.Scale)
					return err
				})
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", treeFormatDOT, "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&sizes, "sizes", false, "label nodes with their laid out sizes")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "draw the tree left to right")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document encoding when reading stdin: json (default), toml")

	return cmd
}

// sizeAnnotator lays each node out in lctx and reports its box sizes.
// Nodes that fail to lay out are labeled with the error.
func sizeAnnotator(lctx layout.Context) func(content.Node) string {
	return func(n content.Node) string {
		ml, err := n.Layout(lctx)
		if err != nil {
			return err.Error()
		}
		return tree.Dimensions(ml)
	}
}

func renderTree(ctx context.Context, dot, format string, scale float64) ([]byte, error) {
	switch format {
	case treeFormatSVG:
		return tree.RenderSVG(ctx, dot)
	case treeFormatPDF:
		return tree.RenderPDF(ctx, dot)
	case treeFormatPNG:
		if scale == 0 {
			scale = pipeline.DefaultScale
		}
		return tree.RenderPNG(ctx, dot, scale)
	default:
		return []byte(dot), nil
	}
}
