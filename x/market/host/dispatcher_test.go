package host_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	cmocks "github.com/nftmx/node/testutil/cosmos/mocks"
	"github.com/nftmx/node/x/market/host"
	"github.com/nftmx/node/x/market/types"
)

func setupDispatcher(t *testing.T) (host.ChainDispatcher, *cmocks.BankKeeper, *cmocks.ContractKeeper) {
	bank := cmocks.NewBankKeeper(t)
	contracts := cmocks.NewContractKeeper(t)

	return host.NewChainDispatcher(bank, contracts, types.ModuleName, types.EscrowAddress()), bank, contracts
}

func TestChainDispatcherBankSend(t *testing.T) {
	d, bank, _ := setupDispatcher(t)

	to := testutil.AccAddress(t)
	msg, err := testutil.NativeAsset(t, 150).ToTransferMsg(to.String())
	require.NoError(t, err)

	bank.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, to,
		sdk.NewCoins(sdk.NewCoin(testutil.CoinDenom, sdkmath.NewInt(150)))).
		Return(nil)

	require.NoError(t, d.Dispatch(context.Background(), types.EscrowAddress().String(), msg))
}

func TestChainDispatcherTransferNFT(t *testing.T) {
	d, _, contracts := setupDispatcher(t)

	key := testutil.AssetKey(t)
	to := testutil.AccAddress(t).String()
	msg, err := types.TransferNFTMsg(key, to)
	require.NoError(t, err)

	contracts.On("Execute", mock.Anything, sdk.MustAccAddressFromBech32(key.Collection), types.EscrowAddress(),
		mock.MatchedBy(func(bz []byte) bool {
			var exec types.CW721ExecuteMsg
			return json.Unmarshal(bz, &exec) == nil && exec.TransferNft != nil && exec.TransferNft.Recipient == to
		}), sdk.Coins{}).
		Return([]byte{}, nil)

	require.NoError(t, d.Dispatch(context.Background(), types.EscrowAddress().String(), msg))
}

func TestChainDispatcherRejectsForeignSender(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	msg, err := testutil.NativeAsset(t, 1).ToTransferMsg(testutil.AccAddress(t).String())
	require.NoError(t, err)

	err = d.Dispatch(context.Background(), testutil.AccAddress(t).String(), msg)
	require.ErrorIs(t, err, host.ErrInvalidSender)
}

func TestChainDispatcherUnsupported(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	err := d.Dispatch(context.Background(), types.EscrowAddress().String(), wasmvmtypes.CosmosMsg{})
	require.ErrorIs(t, err, host.ErrUnsupportedEffect)
}

func TestEffectKind(t *testing.T) {
	bank, err := testutil.NativeAsset(t, 1).ToTransferMsg(testutil.AccAddress(t).String())
	require.NoError(t, err)
	wasm, err := types.TransferNFTMsg(testutil.AssetKey(t), testutil.AccAddress(t).String())
	require.NoError(t, err)

	require.Equal(t, "bank", host.EffectKind(bank))
	require.Equal(t, "wasm", host.EffectKind(wasm))
	require.Equal(t, "unknown", host.EffectKind(wasmvmtypes.CosmosMsg{}))
}
