package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/layout"
)

func (c *CLI) editCommand() *cobra.Command {
	var from, output string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a dashboard interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), from, output)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "snapshot JSON to start from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final snapshot to this file")
	return cmd
}

func (c *CLI) runEdit(ctx context.Context, from, output string) error {
	start, version, err := c.startLayout(from)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; engine debug logs would corrupt it.
	engine := layout.NewEngine(start, layout.WithName("edit"), layout.WithLogger(newLogger(io.Discard, LogInfo)))
	p := tea.NewProgram(NewEditorModel(ctx, engine), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	final, applied := engine.Snapshot()
	fmt.Fprintln(c.Out, renderSurface(final.Surface(), defaultCellWidth, ""))
	printDetail(c.Out, "%d placed · %d changes", final.PlacedCount(), applied)

	if output != "" {
		if err := gio.ExportJSON(final, version+applied, output); err != nil {
			return err
		}
		printFile(c.Out, output)
	}
	return nil
}
