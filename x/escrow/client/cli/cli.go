package cli

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/x/escrow/types"
	mcli "github.com/nftmx/node/x/market/client/cli"
	mtypes "github.com/nftmx/node/x/market/types"
)

const (
	FlagAddress = "address"
	FlagDenom   = "denom"
	FlagAmount  = "amount"
	FlagOwner   = "owner"
)

// Host manages the local ownership registry and balance ledger
type Host interface {
	Mint(key mtypes.AssetKey, owner string) (int64, error)
	Fund(addr, denom string, amount sdkmath.Int) (int64, error)
	Balance(addr, denom string) (sdkmath.Int, error)
	OwnerOf(key mtypes.AssetKey) (string, error)
}

type heightResponse struct {
	Height int64 `json:"height"`
}

func hostFromCmd(cmd *cobra.Command) (Host, error) {
	host, ok := utilcli.GetContextFromCmd(cmd).Host.(Host)
	if !ok {
		return nil, fmt.Errorf("%s: no escrow host configured", cmd.CommandPath()) // nolint: goerr113
	}
	return host, nil
}

// GetCmd returns the devnet ledger commands
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Local asset registry and balance ledger subcommands",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		cmdMint(),
		cmdFund(),
		cmdBalance(),
		cmdOwner(),
	)

	return cmd
}

func cmdMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Register a new token",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := mcli.AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			owner, err := cmd.Flags().GetString(FlagOwner)
			if err != nil {
				return err
			}

			host, err := hostFromCmd(cmd)
			if err != nil {
				return err
			}

			height, err := host.Mint(key, owner)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, heightResponse{Height: height})
		},
	}

	mcli.AddAssetKeyFlags(cmd.Flags())
	mcli.MarkReqAssetKeyFlags(cmd)
	cmd.Flags().String(FlagOwner, "", "Owner address")
	_ = cmd.MarkFlagRequired(FlagOwner)

	return cmd
}

func cmdFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Credit an account",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := cmd.Flags().GetString(FlagAddress)
			if err != nil {
				return err
			}

			denom, err := cmd.Flags().GetString(FlagDenom)
			if err != nil {
				return err
			}

			val, err := cmd.Flags().GetString(FlagAmount)
			if err != nil {
				return err
			}

			amount, ok := sdkmath.NewIntFromString(val)
			if !ok {
				return types.ErrInvalidAmount.Wrapf("--%s: %q is not an integer", FlagAmount, val)
			}

			host, err := hostFromCmd(cmd)
			if err != nil {
				return err
			}

			height, err := host.Fund(addr, denom, amount)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, heightResponse{Height: height})
		},
	}

	addBalanceFlags(cmd)
	cmd.Flags().String(FlagAmount, "", "Amount in base units")
	_ = cmd.MarkFlagRequired(FlagAmount)

	return cmd
}

func cmdBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Query an account balance",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := cmd.Flags().GetString(FlagAddress)
			if err != nil {
				return err
			}

			denom, err := cmd.Flags().GetString(FlagDenom)
			if err != nil {
				return err
			}

			host, err := hostFromCmd(cmd)
			if err != nil {
				return err
			}

			amount, err := host.Balance(addr, denom)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, types.Balance{Address: addr, Denom: denom, Amount: amount})
		},
	}

	addBalanceFlags(cmd)

	return cmd
}

func cmdOwner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Query the owner of a token",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := mcli.AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			host, err := hostFromCmd(cmd)
			if err != nil {
				return err
			}

			owner, err := host.OwnerOf(key)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, types.NFT{Collection: key.Collection, TokenID: key.TokenID, Owner: owner})
		},
	}

	mcli.AddAssetKeyFlags(cmd.Flags())
	mcli.MarkReqAssetKeyFlags(cmd)

	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagAddress, "", "Account address")
	cmd.Flags().String(FlagDenom, "", "Bank denomination or cw20 contract address")
	_ = cmd.MarkFlagRequired(FlagAddress)
	_ = cmd.MarkFlagRequired(FlagDenom)
}
