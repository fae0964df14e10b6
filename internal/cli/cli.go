package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	"github.com/matzehuels/gridboard/pkg/catalog"
	"github.com/matzehuels/gridboard/pkg/config"
	gio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/widget"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion help.
const appName = "gridboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer

	configPath  string
	catalogPath string
	config      config.Config
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridboard arranges dashboard widgets on a 12-column grid",
		Long:         `Gridboard is a CLI for building dashboards: pick widgets from a catalog, place them on a 12-column surface, then reorder, resize and remove them from scripts, an interactive editor or an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(contextOf(cmd), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridboard/config.toml)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "TOML widget catalog (default: built-in)")

	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file. The log level from the file only
// applies when --verbose has not already raised it to debug.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	if c.Logger.GetLevel() != log.DebugLevel {
		level, _ := cfg.LogLevel()
		c.Logger.SetLevel(level)
	}
	return nil
}

// =============================================================================
// Seed Loading
// =============================================================================

// seedWidgets returns the catalog selected by --catalog, then the config
// file, then the built-in default.
func (c *CLI) seedWidgets() ([]widget.Widget, error) {
	path := c.catalogPath
	if path == "" {
		path = c.config.Catalog.Path
	}
	if path == "" {
		return catalog.Default(), nil
	}
	c.Logger.Debug("loading catalog", "path", path)
	return catalog.Load(path)
}

// startLayout returns the layout to edit: the snapshot at from when given,
// otherwise a fresh layout over the seed catalog.
func (c *CLI) startLayout(from string) (layout.Layout, uint64, error) {
	if from != "" {
		c.Logger.Debug("loading snapshot", "path", from)
		return gio.ImportJSON(from)
	}
	seed, err := c.seedWidgets()
	if err != nil {
		return layout.Layout{}, 0, err
	}
	l, err := layout.New(seed)
	return l, 0, err
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
