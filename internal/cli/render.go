package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/pipeline"
)

// renderCommand creates the render command, which writes a visual artifact.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags       = renderFlags{format: pipeline.FormatSVG}
		output      string
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a document to SVG, PDF, PNG, JSON or a text dump",
		Long: `Render a document's layout.

SVG output draws every page with its debug boxes outlined and its text runs
placed at their baselines. PDF and PNG are converted from the SVG and require
rsvg-convert (librsvg).

Without --output the file is named after the document with the format's
extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.config)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			ctx := cmd.Context()
			var result *pipeline.Result
			err := spin(ctx, "Rendering "+opts.Format+"...", func() (err error) {
				result, err = c.execute(ctx, args[0], inputFormat, opts)
				return err
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = outputPath(args[0], opts.Format)
			}
			if err := writeOutput(cmd.OutOrStdout(), output, result.Artifact); err != nil {
				return err
			}
			printStats(result.Stats.Pages, result.Stats.Actions, result.CacheInfo.RenderHit)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document encoding when reading stdin: json (default), toml")

	return cmd
}

// outputPath derives the artifact path from the document path. Documents
// read from stdin render to stdout.
func outputPath(docPath, format string) string {
	if docPath == stdinPath {
		return stdinPath
	}
	ext := format
	if format == pipeline.FormatDump {
		ext = "txt"
	} else if format == pipeline.FormatJSON {
		ext = "layout.json"
	}
	base := strings.TrimSuffix(docPath, filepath.Ext(docPath))
	return base + "." + ext
}
