package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

// stdinPath reads the document from standard input.
const stdinPath = "-"

// layoutCommand creates the layout command, which prints the laid out boxes.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags       renderFlags
		output      string
		asJSON      bool
		summary     bool
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Lay out a document and print the resulting boxes",
		Long: `Lay out a document and print one box per used space.

The default output is the text dump: the box count, then for each box its
size in points, the action count and one action per line. Use --json for the
JSON form. Pass "-" to read the document from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.config)
			opts.Format = pipeline.FormatDump
			if asJSON {
				opts.Format = pipeline.FormatJSON
			}

			result, err := c.execute(cmd.Context(), args[0], inputFormat, opts)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd.OutOrStdout(), output, result.Artifact); err != nil {
				return err
			}
			if summary {
				fmt.Fprintln(uiOut, pageTable(result.Layout, -1))
				printStats(result.Stats.Pages, result.Stats.Actions, result.CacheInfo.LayoutHit)
			}
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the text dump")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print a page table to stderr")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document encoding when reading stdin: json (default), toml")

	return cmd
}

// execute decodes the document at path and runs it through the pipeline.
func (c *CLI) execute(ctx context.Context, path, inputFormat string, opts pipeline.Options) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	doc, err := readDocument(ctx, path, inputFormat)
	if err != nil {
		return nil, err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Laid out %s", plural(result.Stats.Pages, "page")))
	return result, nil
}

// readDocument reads a document file, or standard input for "-".
func readDocument(ctx context.Context, path, inputFormat string) (*document.Document, error) {
	if path != stdinPath {
		return pipeline.DecodeFile(ctx, path)
	}

	format := document.FormatJSON
	if inputFormat != "" {
		f, err := document.ParseFormat(inputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}
	return pipeline.Decode(ctx, os.Stdin, format)
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == stdinPath {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printFile(path)
	return nil
}
