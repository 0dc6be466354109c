package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/app"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
)

func (c *cli) historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <address>",
		Short: "Print the stored history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
				txs, err := w.Service.GetHistory(ctx, args[0])
				if err != nil {
					return err
				}
				if limit > 0 && len(txs) > limit {
					txs = txs[:limit]
				}
				return printJSON(cmd.OutOrStdout(), txs)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many records")
	return cmd
}

func (c *cli) syncGapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-gap <address>",
		Short: "Backfill incoming transfers from the tx indexer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
				report, err := w.Service.SyncGap(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

func (c *cli) heartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat <address>",
		Short: "Scan the heights after the checkpoint once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
				report, err := w.Service.SyncHeartbeat(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

func (c *cli) rescanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescan <address>",
		Short: "Run a forced rescan of the recent heights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
				report, err := w.Service.OnPossibleCredit(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

func (c *cli) checkpointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Inspect or reset the scan checkpoint",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <address>",
			Short: "Print the last fully scanned height",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
					height, err := w.Service.Checkpoint(ctx, args[0])
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), height)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "set <address> <height>",
			Short: "Overwrite the checkpoint, also backwards",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				height, err := safe.ParseHeight(args[1])
				if err != nil {
					return err
				}
				return c.withWallet(cmd, func(ctx context.Context, w *app.Wallet) error {
					return w.Service.ResetCheckpoint(ctx, args[0], height)
				})
			},
		},
	)
	return cmd
}
