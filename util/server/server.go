package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

// NewHTTPServer returns a server for handler with the default timeouts
func NewHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}
}

// WithCORS lets browsers on origins call handler. An empty list leaves
// handler untouched.
func WithCORS(handler http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return handler
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)
}

// StartHTTPServer serves srv on l in g and shuts it down once ctx is done.
// ctx must be the group context so that a failing listener stops the group.
func StartHTTPServer(ctx context.Context, g *errgroup.Group, srv *http.Server, l net.Listener, logger log.Logger) {
	g.Go(func() error {
		logger.Info("starting http server", "address", l.Addr().String())

		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		logger.Info("stopping http server", "address", l.Addr().String())

		return srv.Shutdown(sctx)
	})
}
