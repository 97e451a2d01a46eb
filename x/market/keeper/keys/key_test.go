package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	"github.com/nftmx/node/x/market/keeper/keys"
)

func TestAssetKeyRoundTrip(t *testing.T) {
	key := testutil.AssetKey(t)

	pk := keys.AssetKeyToKey(key)
	require.Equal(t, key.Collection, pk.K1())
	require.Equal(t, key.TokenID, pk.K2())
	require.Equal(t, key, keys.KeyToAssetKey(pk))

	buf := make([]byte, keys.AssetPrimaryKeyCodec.Size(pk))
	n, err := keys.AssetPrimaryKeyCodec.Encode(buf, pk)
	require.NoError(t, err)

	read, decoded, err := keys.AssetPrimaryKeyCodec.Decode(buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, read)
	require.Equal(t, pk, decoded)
}
