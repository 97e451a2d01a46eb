package cli

import (
	"github.com/spf13/cobra"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

// GetQueryCmd returns the query commands for the market module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Marketplace query subcommands",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		cmdGetVersion(),
		cmdGetOrder(),
		cmdGetBid(),
		cmdGetOrders(),
		cmdGetBids(),
		cmdGetParams(),
	)

	return cmd
}

func queryClient(cmd *cobra.Command) (query.Client, error) {
	host, err := HostFromCmd(cmd)
	if err != nil {
		return nil, err
	}
	return query.NewClient(host, types.ModuleName), nil
}

func cmdGetVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Query engine version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Version()
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}
}

func cmdGetOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Query order",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Order(key)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}

	AddAssetKeyFlags(cmd.Flags())
	MarkReqAssetKeyFlags(cmd)

	return cmd
}

func cmdGetBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Query bid",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := AssetKeyFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Bid(key)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}

	AddAssetKeyFlags(cmd.Flags())
	MarkReqAssetKeyFlags(cmd)

	return cmd
}

func cmdGetOrders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Query for all orders",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := FiltersFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Orders(filters)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}

	AddFilterFlags(cmd.Flags())

	return cmd
}

func cmdGetBids() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bids",
		Short: "Query for all bids",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := FiltersFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Bids(filters)
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}

	AddFilterFlags(cmd.Flags())

	return cmd
}

func cmdGetParams() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query module parameters",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := queryClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Params()
			if err != nil {
				return err
			}

			return utilcli.PrintOutput(cmd, res)
		},
	}
}
