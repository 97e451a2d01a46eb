package keeper_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	"github.com/nftmx/node/testutil/state"
	"github.com/nftmx/node/x/escrow/keeper"
	"github.com/nftmx/node/x/escrow/types"
	mtypes "github.com/nftmx/node/x/market/types"
)

func setupKeeper(t testing.TB) (sdk.Context, keeper.Keeper) {
	t.Helper()
	ts := state.SetupTestSuite(t)
	return ts.Context(), ts.EscrowKeeper()
}

func TestMintAndTransfer(t *testing.T) {
	ctx, k := setupKeeper(t)

	key := testutil.AssetKey(t)
	owner := testutil.AccAddress(t).String()
	other := testutil.AccAddress(t).String()

	_, err := k.OwnerOf(ctx, key)
	require.ErrorIs(t, err, types.ErrNFTNotFound)

	require.NoError(t, k.Mint(ctx, key, owner))
	require.ErrorIs(t, k.Mint(ctx, key, other), types.ErrNFTExists)

	res, err := k.OwnerOf(ctx, key)
	require.NoError(t, err)
	require.Equal(t, owner, res)

	require.ErrorIs(t, k.TransferNFT(ctx, key, other, owner), types.ErrNotOwner)
	require.ErrorIs(t, k.TransferNFT(ctx, key, owner, "bogus"), types.ErrInvalidAddress)

	require.NoError(t, k.TransferNFT(ctx, key, owner, other))

	res, err = k.OwnerOf(ctx, key)
	require.NoError(t, err)
	require.Equal(t, other, res)
}

func TestMintInvalid(t *testing.T) {
	ctx, k := setupKeeper(t)

	require.ErrorIs(t, k.Mint(ctx, testutil.AssetKey(t), "bogus"), types.ErrInvalidAddress)
	require.ErrorIs(t, k.Mint(ctx, mtypes.MakeAssetKey("bogus", "1"), testutil.AccAddress(t).String()),
		mtypes.ErrInvalidAssetKey)
}

func TestFundAndSend(t *testing.T) {
	ctx, k := setupKeeper(t)

	from := testutil.AccAddress(t).String()
	to := testutil.AccAddress(t).String()

	require.ErrorIs(t, k.Fund(ctx, from, testutil.CoinDenom, sdkmath.ZeroInt()), types.ErrInvalidAmount)
	require.NoError(t, k.Fund(ctx, from, testutil.CoinDenom, sdkmath.NewInt(100)))
	require.NoError(t, k.Fund(ctx, from, testutil.CoinDenom, sdkmath.NewInt(50)))

	balance, err := k.Balance(ctx, from, testutil.CoinDenom)
	require.NoError(t, err)
	require.Equal(t, "150", balance.String())

	require.ErrorIs(t, k.Send(ctx, from, to, testutil.CoinDenom, sdkmath.NewInt(151)), types.ErrInsufficientFunds)
	require.ErrorIs(t, k.Send(ctx, from, to, testutil.CoinDenom, sdkmath.NewInt(-1)), types.ErrInvalidAmount)
	require.NoError(t, k.Send(ctx, from, to, testutil.CoinDenom, sdkmath.NewInt(150)))

	balance, err = k.Balance(ctx, from, testutil.CoinDenom)
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	balance, err = k.Balance(ctx, to, testutil.CoinDenom)
	require.NoError(t, err)
	require.Equal(t, "150", balance.String())

	// emptied balances are removed from the ledger
	var balances types.Balances
	require.NoError(t, k.WithBalances(ctx, func(b types.Balance) bool {
		balances = append(balances, b)
		return false
	}))
	require.Len(t, balances, 1)
	require.Equal(t, to, balances[0].Address)
}

func TestDeposit(t *testing.T) {
	ctx, k := setupKeeper(t)

	bidder := testutil.AccAddress(t).String()
	token := testutil.Collection(t)

	require.NoError(t, k.Fund(ctx, bidder, testutil.CoinDenom, sdkmath.NewInt(100)))
	require.NoError(t, k.Fund(ctx, bidder, token, sdkmath.NewInt(10)))

	require.NoError(t, k.Deposit(ctx, bidder, testutil.NativeAsset(t, 60), testutil.TokenAsset(t, token, 10)))

	balance, err := k.Balance(ctx, k.EscrowAddress(), testutil.CoinDenom)
	require.NoError(t, err)
	require.Equal(t, "60", balance.String())

	balance, err = k.Balance(ctx, k.EscrowAddress(), token)
	require.NoError(t, err)
	require.Equal(t, "10", balance.String())

	err = k.Deposit(ctx, bidder, testutil.NativeAsset(t, 41))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestDepositNFT(t *testing.T) {
	ctx, k := setupKeeper(t)

	key := testutil.AssetKey(t)
	owner := testutil.AccAddress(t).String()

	require.ErrorIs(t, k.DepositNFT(ctx, key, owner), types.ErrNFTNotFound)

	require.NoError(t, k.Mint(ctx, key, owner))
	require.NoError(t, k.DepositNFT(ctx, key, owner))

	res, err := k.OwnerOf(ctx, key)
	require.NoError(t, err)
	require.Equal(t, mtypes.EscrowAddress().String(), res)
	require.Equal(t, res, k.EscrowAddress())
}

func TestDispatchBankSend(t *testing.T) {
	ctx, k := setupKeeper(t)

	to := testutil.AccAddress(t).String()
	require.NoError(t, k.Fund(ctx, k.EscrowAddress(), testutil.CoinDenom, sdkmath.NewInt(100)))

	msg, err := testutil.NativeAsset(t, 70).ToTransferMsg(to)
	require.NoError(t, err)
	require.NoError(t, k.Dispatch(ctx, k.EscrowAddress(), msg))

	balance, err := k.Balance(ctx, to, testutil.CoinDenom)
	require.NoError(t, err)
	require.Equal(t, "70", balance.String())

	err = k.Dispatch(ctx, k.EscrowAddress(), msg)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestDispatchCW20Transfer(t *testing.T) {
	ctx, k := setupKeeper(t)

	token := testutil.Collection(t)
	to := testutil.AccAddress(t).String()
	require.NoError(t, k.Fund(ctx, k.EscrowAddress(), token, sdkmath.NewInt(5)))

	msg, err := testutil.TokenAsset(t, token, 5).ToTransferMsg(to)
	require.NoError(t, err)
	require.NoError(t, k.Dispatch(ctx, k.EscrowAddress(), msg))

	balance, err := k.Balance(ctx, to, token)
	require.NoError(t, err)
	require.Equal(t, "5", balance.String())
}

func TestDispatchTransferNFT(t *testing.T) {
	ctx, k := setupKeeper(t)

	key := testutil.AssetKey(t)
	to := testutil.AccAddress(t).String()
	require.NoError(t, k.Mint(ctx, key, k.EscrowAddress()))

	var transferred []types.NFT
	k.AddOnNFTTransferredHook(func(_ context.Context, nft types.NFT) {
		transferred = append(transferred, nft)
	})

	msg, err := mtypes.TransferNFTMsg(key, to)
	require.NoError(t, err)

	// only the current owner may move the token
	require.ErrorIs(t, k.Dispatch(ctx, to, msg), types.ErrNotOwner)
	require.NoError(t, k.Dispatch(ctx, k.EscrowAddress(), msg))

	owner, err := k.OwnerOf(ctx, key)
	require.NoError(t, err)
	require.Equal(t, to, owner)

	require.Len(t, transferred, 1)
	require.Equal(t, types.NFT{Collection: key.Collection, TokenID: key.TokenID, Owner: to}, transferred[0])
}

func TestDispatchUnsupported(t *testing.T) {
	ctx, k := setupKeeper(t)

	err := k.Dispatch(ctx, k.EscrowAddress(), wasmvmtypes.CosmosMsg{
		Bank: &wasmvmtypes.BankMsg{Burn: &wasmvmtypes.BurnMsg{}},
	})
	require.ErrorIs(t, err, types.ErrUnsupportedMsg)

	bz, err := json.Marshal(map[string]interface{}{"burn": map[string]string{"token_id": "1"}})
	require.NoError(t, err)

	err = k.Dispatch(ctx, k.EscrowAddress(), wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{Execute: &wasmvmtypes.ExecuteMsg{
			ContractAddr: testutil.Collection(t),
			Msg:          bz,
		}},
	})
	require.ErrorIs(t, err, types.ErrUnsupportedMsg)

	err = k.Dispatch(ctx, k.EscrowAddress(), wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{Execute: &wasmvmtypes.ExecuteMsg{
			ContractAddr: testutil.Collection(t),
			Msg:          []byte("{"),
		}},
	})
	require.ErrorIs(t, err, types.ErrUnsupportedMsg)
}
