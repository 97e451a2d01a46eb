package cmd

import (
	"context"
	"fmt"
	"net"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/util/server"
	"github.com/nftmx/node/x/market/client/rest"
	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

const (
	flagAddress     = "address"
	flagCORSOrigins = "cors-allowed-origins"

	defaultAddress = "127.0.0.1:3317"
)

// Host is what the REST server needs from the application
type Host interface {
	query.Node
	rest.Deliverer
	rest.Subscribable
}

// NewRouter returns the REST routes of the marketplace plus /metrics
func NewRouter(host Host, logger log.Logger) *mux.Router {
	r := mux.NewRouter()
	rest.RegisterRoutes(host, r, types.ModuleName)
	rest.RegisterTxRoutes(host, r, types.ModuleName)
	rest.RegisterEventRoutes(host, r, types.ModuleName, logger)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ServeCmd serves the REST query API until interrupted
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API, the event stream and metrics",
		Long: `Serve the REST API, the event stream and metrics.

The server owns the state directory while it runs. Commands reach it through
POST /nftmarket/tx and committed results stream from the /nftmarket/events
websocket. The tx route trusts the sender named in each request: bind it to
a local address only.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cctx := utilcli.GetContextFromCmd(cmd)

			host, ok := cctx.Host.(Host)
			if !ok {
				return fmt.Errorf("%s: no application configured", cmd.CommandPath()) // nolint: goerr113
			}

			addr := cctx.Viper.GetString(flagAddress)

			l, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			g, gctx := errgroup.WithContext(ctx)

			handler := server.WithCORS(NewRouter(host, cctx.Logger), cctx.Viper.GetStringSlice(flagCORSOrigins))

			server.ListenForQuitSignals(gctx, g, cancel, cctx.Logger)
			server.StartHTTPServer(gctx, g, server.NewHTTPServer(handler), l, cctx.Logger)

			return g.Wait()
		},
	}

	cmd.Flags().String(flagAddress, defaultAddress, "listen address of the REST server")
	cmd.Flags().StringSlice(flagCORSOrigins, nil, "origins allowed to call the API from a browser")

	return cmd
}
