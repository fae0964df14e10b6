package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	gio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// applyOpts holds the flags for the apply command.
type applyOpts struct {
	from   string // snapshot to start from
	output string // snapshot file to write
	strict bool   // stop at the first rejected intent
	quiet  bool   // skip the per-intent report
}

// applyCommand runs an intent script against the seed catalog or a saved
// snapshot.
func (c *CLI) applyCommand() *cobra.Command {
	var opts applyOpts
	cmd := &cobra.Command{
		Use:   "apply <script|->",
		Short: "Apply an intent script and print the resulting surface",
		Long: `Apply reads one intent per line and applies them in order:

  place <widget> [position]
  reorder <widget> <target>
  remove <widget>
  resize <widget> <span>
  nudge <widget> left|right

Rejected intents are reported and skipped unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "snapshot JSON to start from")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the resulting snapshot to this file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first rejected intent")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print the final surface")
	return cmd
}

func (c *CLI) runApply(ctx context.Context, script string, opts applyOpts) error {
	logger := loggerFromContext(ctx)

	intents, err := readScript(script)
	if err != nil {
		return err
	}
	start, version, err := c.startLayout(opts.from)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	engine := layout.NewEngine(start, layout.WithLogger(logger), layout.WithName(script))
	rejected, err := c.applyAll(ctx, engine, intents, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Applied %d intents", len(intents)))

	final, engineVersion := engine.Snapshot()

	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, renderSurface(final.Surface(), defaultCellWidth, ""))
	printDetail(c.Out, "%d placed · %d in catalog · %d rejected", final.PlacedCount(), final.Len()-final.PlacedCount(), rejected)

	if opts.output != "" {
		if err := gio.ExportJSON(final, version+engineVersion, opts.output); err != nil {
			return err
		}
		printFile(c.Out, opts.output)
	}
	return nil
}

// applyAll feeds intents to engine, reporting each outcome, and returns
// the number of rejections.
func (c *CLI) applyAll(ctx context.Context, engine *layout.Engine, intents []layout.Intent, opts applyOpts) (int, error) {
	rejected := 0
	for i, in := range intents {
		if err := ctx.Err(); err != nil {
			return rejected, err
		}
		res, err := engine.Apply(ctx, in)
		line := gio.FormatIntent(in)
		switch {
		case err != nil && opts.strict:
			return rejected, fmt.Errorf("intent %d (%s): %w", i+1, line, err)
		case err != nil:
			rejected++
			if !opts.quiet {
				printError(c.Out, "%s %s", line, StyleError.Render(errs.UserMessage(err)))
			}
		case !opts.quiet && res.Changed():
			printSuccess(c.Out, "%s", line)
		case !opts.quiet:
			printInfo(c.Out, "%s %s", line, StyleDim.Render("(unchanged)"))
		}
	}
	return rejected, nil
}

// readScript parses the script at path, or stdin when path is "-".
func readScript(path string) ([]layout.Intent, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return gio.ParseScript(r)
}
