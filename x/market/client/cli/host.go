package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

// Host executes engine commands and answers queries against committed state
type Host interface {
	query.Node
	Deliver(msg types.Msg) (*types.TxResult, error)
}

// HostFromCmd returns the host set on the command context by the root command
func HostFromCmd(cmd *cobra.Command) (Host, error) {
	host, ok := utilcli.GetContextFromCmd(cmd).Host.(Host)
	if !ok {
		return nil, fmt.Errorf("%s: no market host configured", cmd.CommandPath()) // nolint: goerr113
	}
	return host, nil
}
