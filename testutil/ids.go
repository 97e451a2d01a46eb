package testutil

import (
	"testing"

	"github.com/cometbft/cometbft/crypto/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/types"
)

// AccAddress provides an Account's Address bytes from a ed25519 generated
// private key.
func AccAddress(t testing.TB) sdk.AccAddress {
	t.Helper()
	privKey := ed25519.GenPrivKey()
	return sdk.AccAddress(privKey.PubKey().Address())
}

// Collection provides a random cw721 collection contract address
func Collection(t testing.TB) string {
	t.Helper()
	return AccAddress(t).String()
}

func AssetKey(t testing.TB) types.AssetKey {
	t.Helper()
	return types.MakeAssetKey(Collection(t), TokenID(t))
}

func AssetKeyForCollection(t testing.TB, collection string) types.AssetKey {
	t.Helper()
	return types.MakeAssetKey(collection, TokenID(t))
}
