package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cosmossdk.io/log"
	"golang.org/x/sync/errgroup"
)

// ListenForQuitSignals cancels through cancelFn on SIGINT or SIGTERM. The
// listener runs in g and returns once a signal arrives or ctx is done, so a
// group that stops for another reason does not wait on it.
func ListenForQuitSignals(ctx context.Context, g *errgroup.Group, cancelFn context.CancelFunc, logger log.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	g.Go(func() error {
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			logger.Info("caught signal", "signal", sig.String())
			cancelFn()
		case <-ctx.Done():
		}

		return nil
	})
}
