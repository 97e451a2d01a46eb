package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nftmx/node/app"
	utilcli "github.com/nftmx/node/util/cli"
)

const (
	flagToFile = "to-file"
	flagYes    = "yes"
)

type genesisHost interface {
	LastBlockHeight() int64
	InitGenesis(app.GenesisState) (int64, error)
	ExportGenesis() (app.GenesisState, error)
}

func genesisHostFromCmd(cmd *cobra.Command) (genesisHost, error) {
	host, ok := utilcli.GetContextFromCmd(cmd).Host.(genesisHost)
	if !ok {
		return nil, fmt.Errorf("%s: no application configured", cmd.CommandPath()) // nolint: goerr113
	}
	return host, nil
}

// GenesisCmd groups the state import and export commands
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Import and export marketplace state",
	}

	cmd.AddCommand(
		genesisExportCmd(),
		genesisImportCmd(),
		genesisDefaultCmd(),
	)

	return cmd
}

func genesisExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export committed state as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := genesisHostFromCmd(cmd)
			if err != nil {
				return err
			}

			gs, err := host.ExportGenesis()
			if err != nil {
				return err
			}

			return writeGenesis(cmd, gs)
		},
	}

	cmd.Flags().String(flagToFile, "", "write the exported genesis to the given file instead of STDOUT")

	return cmd
}

func genesisDefaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "default",
		Short:       "Print the default genesis JSON",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoHost: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeGenesis(cmd, app.NewDefaultGenesisState())
		},
	}

	cmd.Flags().String(flagToFile, "", "write the genesis to the given file instead of STDOUT")

	return cmd
}

func genesisImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Load a genesis JSON file into the store",
		Long: `Load a genesis JSON file into the store as a new block.

Importing on top of existing state asks for confirmation unless --yes is given.
`,
		Example: "nftmarketd genesis import ./genesis.json --yes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := genesisHostFromCmd(cmd)
			if err != nil {
				return err
			}

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var gs app.GenesisState
			if err := json.Unmarshal(bz, &gs); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			if err := app.ValidateGenesis(gs); err != nil {
				return err
			}

			yes, err := cmd.Flags().GetBool(flagYes)
			if err != nil {
				return err
			}

			if !yes && host.LastBlockHeight() > 0 {
				ok, err := utilcli.GetConfirmation(cmd, fmt.Sprintf("store is at height %d, import anyway?", host.LastBlockHeight()))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("import aborted") // nolint: goerr113
				}
			}

			height, err := host.InitGenesis(gs)
			if err != nil {
				return err
			}

			utilcli.GetContextFromCmd(cmd).Logger.Info("genesis imported", "file", args[0], "height", height)

			return utilcli.PrintOutput(cmd, map[string]int64{"height": height})
		},
	}

	cmd.Flags().BoolP(flagYes, "y", false, "skip the confirmation prompt")

	return cmd
}

func writeGenesis(cmd *cobra.Command, gs app.GenesisState) error {
	bz, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}
	bz = append(bz, '\n')

	file, err := cmd.Flags().GetString(flagToFile)
	if err != nil {
		return err
	}

	if file == "" {
		_, err = cmd.OutOrStdout().Write(bz)
		return err
	}

	return os.WriteFile(file, bz, 0o600)
}
