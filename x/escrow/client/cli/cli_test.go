package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/app"
	"github.com/nftmx/node/testutil"
	utilcli "github.com/nftmx/node/util/cli"
	"github.com/nftmx/node/x/escrow/client/cli"
	"github.com/nftmx/node/x/escrow/types"
)

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	root := &cobra.Command{Use: "test", SilenceUsage: true, SilenceErrors: true}
	utilcli.AddOutputFlag(root)
	root.AddCommand(cli.GetCmd())
	utilcli.SetCmdContext(root, &utilcli.Context{Logger: testutil.Logger(t), Host: a})

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs(append([]string{types.ModuleName}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestEscrowCommands(t *testing.T) {
	a, err := app.NewApp(app.WithLogger(testutil.Logger(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	key := testutil.AssetKey(t)
	owner := testutil.AccAddress(t).String()

	_, err = run(t, a, "mint", "--collection", key.Collection, "--token-id", key.TokenID, "--owner", owner)
	require.NoError(t, err)

	_, err = run(t, a, "mint", "--collection", key.Collection, "--token-id", key.TokenID, "--owner", owner)
	require.ErrorIs(t, err, types.ErrNFTExists)

	out, err := run(t, a, "owner", "--collection", key.Collection, "--token-id", key.TokenID, "-o", "json")
	require.NoError(t, err)

	var nft types.NFT
	require.NoError(t, json.Unmarshal([]byte(out), &nft))
	require.Equal(t, owner, nft.Owner)

	_, err = run(t, a, "fund", "--address", owner, "--denom", testutil.CoinDenom, "--amount", "250")
	require.NoError(t, err)

	_, err = run(t, a, "fund", "--address", owner, "--denom", testutil.CoinDenom, "--amount", "lots")
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	out, err = run(t, a, "balance", "--address", owner, "--denom", testutil.CoinDenom, "-o", "json")
	require.NoError(t, err)

	var balance types.Balance
	require.NoError(t, json.Unmarshal([]byte(out), &balance))
	require.Equal(t, "250", balance.Amount.String())

	out, err = run(t, a, "balance", "--address", owner, "--denom", testutil.CoinDenom)
	require.NoError(t, err)
	require.Contains(t, out, `amount: "250"`)
}
