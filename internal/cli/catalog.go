package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/gridboard/pkg/io"
)

// catalogCommand lists the widgets a session starts from.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		from   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the widget catalog",
		Long:  `List unplaced widgets grouped by category. With --from, list the widgets still unplaced in a saved snapshot.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := c.startLayout(from)
			if err != nil {
				return err
			}
			view := l.Catalog()
			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(gio.NewCatalogDoc(view))
			}
			fmt.Fprintln(c.Out, renderCatalogTable(view))
			printDetail(c.Out, "%d unplaced · %d placed", view.Len(), l.PlacedCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "snapshot JSON to read instead of the seed catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
