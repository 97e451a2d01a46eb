package query

import (
	"fmt"
	"net/url"

	"github.com/nftmx/node/x/market/types"
)

const (
	versionPath = "version"
	orderPath   = "order"
	bidPath     = "bid"
	ordersPath  = "orders"
	bidsPath    = "bids"
	paramsPath  = "params"
)

func getVersionPath() string {
	return versionPath
}

func getOrderPath(key types.AssetKey) string {
	return fmt.Sprintf("%s/%s/%s", orderPath, key.Collection, url.PathEscape(key.TokenID))
}

func getBidPath(key types.AssetKey) string {
	return fmt.Sprintf("%s/%s/%s", bidPath, key.Collection, url.PathEscape(key.TokenID))
}

func getOrdersPath(filters Filters) string {
	if filters.Collection == "" {
		return ordersPath
	}
	return fmt.Sprintf("%s/%s", ordersPath, filters.Collection)
}

func getBidsPath(filters Filters) string {
	if filters.Collection == "" {
		return bidsPath
	}
	return fmt.Sprintf("%s/%s", bidsPath, filters.Collection)
}

func getParamsPath() string {
	return paramsPath
}

// parseAssetKeyPath parses <collection>/<escaped token_id>
func parseAssetKeyPath(parts []string) (types.AssetKey, error) {
	if len(parts) != 2 {
		return types.AssetKey{}, types.ErrInvalidAssetKey.Wrap("expected <collection>/<token_id>")
	}

	tokenID, err := url.PathUnescape(parts[1])
	if err != nil {
		return types.AssetKey{}, types.ErrInvalidAssetKey.Wrapf("token id: %s", err)
	}

	key := types.MakeAssetKey(parts[0], tokenID)
	if err := key.Validate(); err != nil {
		return types.AssetKey{}, err
	}

	return key, nil
}
