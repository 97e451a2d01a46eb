package keys

import (
	"cosmossdk.io/collections"

	"github.com/nftmx/node/x/market/types"
)

// AssetPrimaryKey is the (collection, token id) key shared by orders and bids
type AssetPrimaryKey = collections.Pair[string, string]

// AssetPrimaryKeyCodec is the key codec for AssetPrimaryKey, composed from stdlib codecs
var AssetPrimaryKeyCodec = collections.PairKeyCodec(
	collections.StringKey,
	collections.StringKey,
)

// AssetKeyToKey converts a types.AssetKey to an AssetPrimaryKey
func AssetKeyToKey(key types.AssetKey) AssetPrimaryKey {
	return collections.Join(key.Collection, key.TokenID)
}

// KeyToAssetKey converts an AssetPrimaryKey back to a types.AssetKey
func KeyToAssetKey(key AssetPrimaryKey) types.AssetKey {
	return types.MakeAssetKey(key.K1(), key.K2())
}

// CollectionRange restricts iteration to the items of one collection
func CollectionRange(collection string) *collections.PairRange[string, string] {
	return collections.NewPrefixedPairRange[string, string](collection)
}
