package cli

import (
	"github.com/spf13/cobra"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/x/market/types"
)

// GetTxCmd returns the transaction commands for market module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Marketplace transaction subcommands",
		SuggestionsMinimumDistance: 2,
	}
	cmd.AddCommand(
		cmdCreateOrder(),
		cmdCreateBid(),
		cmdCancelOrder(),
		cmdCancelBid(),
		cmdExecuteOrder(),
		cmdExec(),
	)
	return cmd
}

func deliver(cmd *cobra.Command, msg types.Msg) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	host, err := HostFromCmd(cmd)
	if err != nil {
		return err
	}

	res, err := host.Deliver(msg)
	if err != nil {
		return err
	}

	return utilcli.PrintOutput(cmd, res)
}

func cmdCreateOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-order",
		Short: "List an asset for sale. The asset is moved into escrow",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			price, err := PriceFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			exp, err := ExpirationFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return deliver(cmd, &types.MsgCreateOrder{
				Sender:     from,
				AssetKey:   key,
				Price:      price,
				Expiration: exp,
			})
		},
	}

	AddFromFlag(cmd.Flags())
	AddAssetKeyFlags(cmd.Flags())
	AddPriceFlags(cmd.Flags())
	AddExpirationFlags(cmd.Flags())

	MarkReqFromFlag(cmd)
	MarkReqAssetKeyFlags(cmd)
	MarkReqPriceFlags(cmd)

	return cmd
}

func cmdCreateBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-bid",
		Short: "Bid on a listed asset. The bid amount is moved into escrow",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			price, err := PriceFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			exp, err := ExpirationFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return deliver(cmd, &types.MsgCreateBid{
				Sender:     from,
				AssetKey:   key,
				Price:      price,
				Expiration: exp,
			})
		},
	}

	AddFromFlag(cmd.Flags())
	AddAssetKeyFlags(cmd.Flags())
	AddPriceFlags(cmd.Flags())
	AddExpirationFlags(cmd.Flags())

	MarkReqFromFlag(cmd)
	MarkReqAssetKeyFlags(cmd)
	MarkReqPriceFlags(cmd)

	return cmd
}

func cmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order",
		Short: "Withdraw a listing. The asset returns to the seller and any bid is refunded",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return deliver(cmd, &types.MsgCancelOrder{
				Sender:   from,
				AssetKey: key,
			})
		},
	}

	AddFromFlag(cmd.Flags())
	AddAssetKeyFlags(cmd.Flags())
	MarkReqFromFlag(cmd)
	MarkReqAssetKeyFlags(cmd)

	return cmd
}

func cmdCancelBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-bid",
		Short: "Withdraw a bid and refund the bidder",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return deliver(cmd, &types.MsgCancelBid{
				Sender:   from,
				AssetKey: key,
			})
		},
	}

	AddFromFlag(cmd.Flags())
	AddAssetKeyFlags(cmd.Flags())
	MarkReqFromFlag(cmd)
	MarkReqAssetKeyFlags(cmd)

	return cmd
}

func cmdExecuteOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-order",
		Short: "Accept the standing bid on an order",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return deliver(cmd, &types.MsgExecuteOrder{
				Sender:   from,
				AssetKey: key,
			})
		},
	}

	AddFromFlag(cmd.Flags())
	AddAssetKeyFlags(cmd.Flags())
	MarkReqFromFlag(cmd)
	MarkReqAssetKeyFlags(cmd)

	return cmd
}

func cmdExec() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exec [json]",
		Short:   "Execute a JSON encoded command",
		Example: `exec --from <address> '{"cancel_bid":{"collection":"<address>","token_id":"1"}}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := FromFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			msg, err := types.ParseExecuteMsg([]byte(args[0]), from)
			if err != nil {
				return err
			}

			return deliver(cmd, msg)
		},
	}

	AddFromFlag(cmd.Flags())
	MarkReqFromFlag(cmd)

	return cmd
}
