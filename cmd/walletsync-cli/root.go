package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/app"
)

type cli struct {
	opts    app.Options
	timeout time.Duration
	verbose bool
	build   func(ctx context.Context, opts app.Options, logger *zap.Logger) (*app.Wallet, error)
}

func newRootCmd() *cobra.Command {
	return newCLI(app.Build).rootCmd()
}

func newCLI(build func(ctx context.Context, opts app.Options, logger *zap.Logger) (*app.Wallet, error)) *cli {
	return &cli{build: build}
}

func (c *cli) rootCmd() *cobra.Command {
	opts, err := app.LoadOptions()
	c.opts = opts

	root := &cobra.Command{
		Use:           "walletsync-cli",
		Short:         "Inspect and synchronize wallet transaction histories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return err
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&c.opts.RPCURL, "rpc-url", c.opts.RPCURL, "CometBFT RPC URL")
	f.StringVar(&c.opts.RESTURL, "rest-url", c.opts.RESTURL, "Cosmos REST URL")
	f.IntVar(&c.opts.RequestsPerSecond, "rps", c.opts.RequestsPerSecond, "max node requests per second, 0 for unlimited")
	f.StringVar(&c.opts.Store, "store", c.opts.Store, "history store backend: sqlite, redis or memory")
	f.StringVar(&c.opts.SQLitePath, "sqlite-path", c.opts.SQLitePath, "sqlite database file")
	f.StringVar(&c.opts.RedisURL, "redis-url", c.opts.RedisURL, "redis url")
	f.StringVar(&c.opts.AddressPrefix, "address-prefix", c.opts.AddressPrefix, "bech32 account prefix")
	f.Uint64Var(&c.opts.ForcedDepth, "forced-depth", c.opts.ForcedDepth, "heights per forced rescan")
	f.DurationVar(&c.timeout, "timeout", 2*time.Minute, "overall command timeout")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "log scanner progress to stderr")

	root.AddCommand(
		c.historyCmd(),
		c.syncGapCmd(),
		c.heartbeatCmd(),
		c.rescanCmd(),
		c.checkpointCmd(),
	)
	return root
}

// withWallet builds the service for one command and releases it afterwards.
func (c *cli) withWallet(cmd *cobra.Command, fn func(ctx context.Context, w *app.Wallet) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()

	logger := zap.NewNop()
	if c.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		defer func() {
			_ = logger.Sync()
		}()
	}

	w, err := c.build(ctx, c.opts, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()
	return fn(ctx, w)
}

func printJSON(out io.Writer, v interface{}) error {
	enc := sonnet.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
