package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	from        string  // snapshot to render
	output      string  // output file; stdout when empty
	format      string  // dot or svg; inferred from output when empty
	detailed    bool    // add ids and spans to labels
	columnWidth float64 // inches per grid column
}

// renderCommand renders a surface preview, optionally after applying a
// script.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{columnWidth: render.DefaultColumnWidth}
	cmd := &cobra.Command{
		Use:   "render [script|-]",
		Short: "Render the surface as Graphviz DOT or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			script := ""
			if len(args) == 1 {
				script = args[0]
			}
			return c.runRender(cmd.Context(), script, opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "snapshot JSON to render")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include widget ids and spans in labels")
	cmd.Flags().Float64Var(&opts.columnWidth, "column-width", opts.columnWidth, "width of one grid column in inches")
	return cmd
}

// resolveFormat picks the explicit format, then the output extension, then
// SVG.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch format {
	case "", formatSVG:
		return formatSVG, nil
	case formatDOT, "gv":
		return formatDOT, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want svg or dot)", format)
	}
}

func (c *CLI) runRender(ctx context.Context, script string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	l, _, err := c.startLayout(opts.from)
	if err != nil {
		return err
	}
	if script != "" {
		intents, err := readScript(script)
		if err != nil {
			return err
		}
		engine := layout.NewEngine(l, layout.WithLogger(logger), layout.WithName(script))
		for _, in := range intents {
			if _, err := engine.Apply(ctx, in); err != nil {
				logger.Warn("intent skipped", "err", err)
			}
		}
		l, _ = engine.Snapshot()
	}

	dot := render.ToDOT(l.Surface(), render.Options{ColumnWidth: opts.columnWidth, Detailed: opts.detailed})
	data := []byte(dot)
	if opts.format == formatSVG {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(c.Out, opts.output)
	return nil
}
