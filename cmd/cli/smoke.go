package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/feed"
)

func makeSmokeCommand() *cobra.Command {
	var requests int
	var parallel int64

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Hit the feed API concurrently and check every flag resolves",
		RunE: func(cmd *cobra.Command, args []string) error {
			return smoke(cmd.Context(), requests, parallel)
		},
	}

	cmd.Flags().IntVar(&requests, "requests", 100, "Number of feed requests")
	cmd.Flags().Int64Var(&parallel, "parallel", 8, "Concurrent requests")

	return cmd
}

func smoke(ctx context.Context, requests int, parallel int64) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sorts := []string{feed.SortNewest, feed.SortOldest, feed.SortViews}
	sema := semaphore.NewWeighted(parallel)
	g, gctx := errgroup.WithContext(ctx)
	fetched := atomic.NewInt64(0)
	start := time.Now()

	for i := 0; i < requests; i++ {
		if err := sema.Acquire(gctx, 1); err != nil {
			break
		}
		sort := sorts[i%len(sorts)]
		g.Go(func() error {
			defer sema.Release(1)

			flags, err := client.ListFlags(api.FlagsRequest{Sort: sort})
			if err != nil {
				return err
			}
			for _, flag := range flags {
				if _, err := client.GetFlag(flag.ID); err != nil {
					return err
				}
				fetched.Inc()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Smoke test passed",
		zap.Int("requests", requests),
		zap.Int64("flags_fetched", fetched.Load()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
