package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/notify"
	"github.com/matzehuels/gridboard/pkg/server"
	"github.com/matzehuels/gridboard/pkg/session"
)

// serveOpts holds the flags for the serve command. Empty values fall back
// to the config file.
type serveOpts struct {
	addr      string
	ttl       time.Duration
	redisAddr string
	channel   string
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the session API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), c.resolveServeOpts(opts))
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, 127.0.0.1:7070)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "idle session lifetime (default from config, 2h)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "publish change events to this Redis server")
	cmd.Flags().StringVar(&opts.channel, "channel", "", "Redis channel for change events")
	return cmd
}

// resolveServeOpts fills unset flags from the loaded config.
func (c *CLI) resolveServeOpts(opts serveOpts) serveOpts {
	if opts.addr == "" {
		opts.addr = c.config.Server.Addr
	}
	if opts.ttl <= 0 {
		opts.ttl = c.config.Server.SessionTTL.Duration
	}
	if opts.redisAddr == "" {
		opts.redisAddr = c.config.Notify.RedisAddr
	}
	if opts.channel == "" {
		opts.channel = c.config.Notify.Channel
	}
	return opts
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	seed, err := c.seedWidgets()
	if err != nil {
		return err
	}
	start, err := layout.New(seed)
	if err != nil {
		return err
	}

	var publisher notify.Publisher = notify.NewNull()
	if opts.redisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		r, err := notify.NewRedis(pingCtx, opts.redisAddr, opts.channel)
		cancel()
		if err != nil {
			return err
		}
		logger.Info("publishing changes", "redis", opts.redisAddr, "channel", r.Channel())
		publisher = r
	}
	defer publisher.Close()

	store := session.NewMemoryStore(opts.ttl)
	srv := server.New(start, store,
		server.WithLogger(logger),
		server.WithPublisher(publisher),
		server.WithSessionTTL(opts.ttl),
	)

	printKeyValue(c.Out, "Listening", "http://"+opts.addr)
	printKeyValue(c.Out, "Widgets", StyleNumber.Render(strconv.Itoa(start.Len())))
	printNextStep(c.Out, "Create a session", "curl -X POST http://"+opts.addr+"/sessions")
	return srv.ListenAndServe(ctx, opts.addr)
}
