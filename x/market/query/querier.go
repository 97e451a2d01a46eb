package query

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/types"
)

// Querier answers path based read-only queries with JSON
type Querier func(ctx sdk.Context, path []string) ([]byte, error)

func NewQuerier(k keeper.IKeeper) Querier {
	q := k.NewQuerier()

	return func(ctx sdk.Context, path []string) ([]byte, error) {
		if len(path) == 0 {
			return nil, types.ErrUnknownRequest.Wrap("empty query path")
		}

		switch path[0] {
		case versionPath:
			return render(q.Version(ctx), nil)
		case orderPath:
			key, err := parseAssetKeyPath(path[1:])
			if err != nil {
				return nil, err
			}
			return render(q.Order(ctx, key))
		case bidPath:
			key, err := parseAssetKeyPath(path[1:])
			if err != nil {
				return nil, err
			}
			return render(q.Bid(ctx, key))
		case ordersPath:
			filters, err := parseFilters(path[1:])
			if err != nil {
				return nil, err
			}
			return render(q.Orders(ctx, filters.Collection))
		case bidsPath:
			filters, err := parseFilters(path[1:])
			if err != nil {
				return nil, err
			}
			return render(q.Bids(ctx, filters.Collection))
		case paramsPath:
			return render(q.Params(ctx))
		}

		return nil, types.ErrUnknownRequest.Wrapf("unknown query path %q", path[0])
	}
}

func parseFilters(parts []string) (Filters, error) {
	switch len(parts) {
	case 0:
		return Filters{}, nil
	case 1:
		if _, err := sdk.AccAddressFromBech32(parts[0]); err != nil {
			return Filters{}, types.ErrInvalidAssetKey.Wrapf("collection: %s", err)
		}
		return Filters{Collection: parts[0]}, nil
	}
	return Filters{}, types.ErrUnknownRequest.Wrap("too many path elements")
}

func render(obj any, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}
