package cmd

import (
	"context"
	"io"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nftmx/node/app"
	utilcli "github.com/nftmx/node/util/cli"
	ecli "github.com/nftmx/node/x/escrow/client/cli"
	mcli "github.com/nftmx/node/x/market/client/cli"
)

// commands carrying this annotation run without opening the application store
const annotationNoHost = "nftmarket.nohost"

// NewRootCmd creates a new root command for nftmarketd. It is called once in
// the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "nftmarketd",
		Short:             "NFT marketplace engine",
		Long:              "NFT marketplace engine.\n\nSellers list NFTs held in escrow, buyers place escrowed bids and\nsettlement moves the asset and the payment atomically.",
		SilenceUsage:      true,
		PersistentPreRunE: GetPersistentPreRunE([]string{"NFTMARKET"}),
	}

	rootCmd.PersistentFlags().String(utilcli.FlagHome, app.DefaultHome, "directory for config and data")
	rootCmd.PersistentFlags().String(app.FlagDBBackend, string(dbm.GoLevelDBBackend), "state database backend (goleveldb|memdb)")
	rootCmd.PersistentFlags().String(utilcli.FlagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.PersistentFlags().String(utilcli.FlagLogFormat, utilcli.LogFormatPlain, "The logging format (json|plain)")
	rootCmd.PersistentFlags().Bool(utilcli.FlagLogColor, false, "Pretty logging output. Applied only when log_format=plain")
	rootCmd.PersistentFlags().String(utilcli.FlagLogTimestamp, "", "Add timestamp prefix to the logs (rfc3339|rfc3339nano|kitchen)")
	utilcli.AddOutputFlag(rootCmd)

	initRootCmd(rootCmd)

	return rootCmd
}

// GetPersistentPreRunE persistent prerun hook for root command
func GetPersistentPreRunE(envPrefixes []string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := utilcli.InterceptConfigsPreRunHandler(cmd, envPrefixes, false); err != nil {
			return err
		}

		if _, ok := cmd.Annotations[annotationNoHost]; ok {
			return nil
		}

		cctx := utilcli.GetContextFromCmd(cmd)

		host, err := app.NewApp(
			app.WithAppOptions(cctx.Viper),
			app.WithLogger(cctx.Logger),
		)
		if err != nil {
			return err
		}

		cctx.Host = host

		return nil
	}
}

// Execute executes the root command. The application opened by the pre-run
// hook is closed once the command returns, whether it failed or not.
func Execute(rootCmd *cobra.Command, envPrefix string) error {
	return ExecuteContext(context.Background(), rootCmd, envPrefix)
}

func ExecuteContext(ctx context.Context, rootCmd *cobra.Command, envPrefix string) error {
	cctx := &utilcli.Context{}
	ctx = utilcli.WithContext(ctx, cctx)

	rootCmd.PersistentPreRunE = GetPersistentPreRunE([]string{envPrefix})

	defer func() {
		if closer, ok := cctx.Host.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}

func initRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		mcli.GetTxCmd(),
		mcli.GetQueryCmd(),
		ecli.GetCmd(),
		GenesisCmd(),
		ServeCmd(),
		VersionCmd(),
	)
}
