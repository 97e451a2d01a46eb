package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetKey identifies a single item of a cw721 collection.
type AssetKey struct {
	Collection string `json:"collection" yaml:"collection"`
	TokenID    string `json:"token_id" yaml:"token_id"`
}

func MakeAssetKey(collection, tokenID string) AssetKey {
	return AssetKey{Collection: collection, TokenID: tokenID}
}

// ParseAssetKey parses the collection#token_id form produced by String.
func ParseAssetKey(val string) (AssetKey, error) {
	parts := strings.SplitN(val, "#", 2)
	if len(parts) != 2 {
		return AssetKey{}, ErrInvalidAssetKey.Wrapf("%q: expected <collection>#<token_id>", val)
	}

	key := MakeAssetKey(parts[0], parts[1])
	if err := key.Validate(); err != nil {
		return AssetKey{}, err
	}

	return key, nil
}

func (k AssetKey) Validate() error {
	if _, err := sdk.AccAddressFromBech32(k.Collection); err != nil {
		return ErrInvalidAssetKey.Wrapf("collection: %s", err)
	}
	if k.TokenID == "" {
		return ErrInvalidAssetKey.Wrap("empty token id")
	}
	if strings.ContainsRune(k.TokenID, 0) {
		return ErrInvalidAssetKey.Wrap("token id contains null byte")
	}
	return nil
}

func (k AssetKey) String() string {
	return fmt.Sprintf("%s#%s", k.Collection, k.TokenID)
}
