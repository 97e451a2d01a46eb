package testutil

import (
	"testing"

	sdkmath "cosmossdk.io/math"

	"github.com/nftmx/node/x/market/types"
)

const CoinDenom = "uatom"

// NativeAsset provides a native denominated price of the given amount
func NativeAsset(t testing.TB, amount int64) types.Asset {
	t.Helper()
	return types.NewNativeAsset(CoinDenom, sdkmath.NewInt(amount))
}

// NativeAssetRandom provides a native denominated price between 1 and 1000
func NativeAssetRandom(t testing.TB) types.Asset {
	t.Helper()
	return NativeAsset(t, int64(RandRangeInt(1, 1000)))
}

// TokenAsset provides a cw20 denominated price of the given amount
func TokenAsset(t testing.TB, contract string, amount int64) types.Asset {
	t.Helper()
	return types.NewTokenAsset(contract, sdkmath.NewInt(amount))
}
