package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/types"
)

// Querier is the read-only view over the market stores.
type Querier struct {
	Keeper
}

// VersionResponse is returned by the version query
type VersionResponse struct {
	Version string `json:"version"`
}

func (k Querier) Version(_ sdk.Context) VersionResponse {
	return VersionResponse{Version: types.EngineVersion}
}

// Order returns the order listed for key or ErrOrderNotFound.
func (k Querier) Order(ctx sdk.Context, key types.AssetKey) (types.Order, error) {
	if err := key.Validate(); err != nil {
		return types.Order{}, err
	}
	return k.orders.Get(ctx, key)
}

// Bid returns the standing bid on key or ErrBidNotFound.
func (k Querier) Bid(ctx sdk.Context, key types.AssetKey) (types.Bid, error) {
	if err := key.Validate(); err != nil {
		return types.Bid{}, err
	}
	return k.bids.Get(ctx, key)
}

// Orders lists active orders, optionally limited to one collection.
func (k Querier) Orders(ctx sdk.Context, collection string) (types.Orders, error) {
	orders := types.Orders{}
	fn := func(_ types.AssetKey, order types.Order) bool {
		orders = append(orders, order)
		return false
	}

	var err error
	if collection == "" {
		err = k.orders.Walk(ctx, fn)
	} else {
		err = k.orders.WalkCollection(ctx, collection, fn)
	}

	return orders, err
}

// Bids lists standing bids, optionally limited to one collection.
func (k Querier) Bids(ctx sdk.Context, collection string) (types.Bids, error) {
	bids := types.Bids{}
	fn := func(_ types.AssetKey, bid types.Bid) bool {
		bids = append(bids, bid)
		return false
	}

	var err error
	if collection == "" {
		err = k.bids.Walk(ctx, fn)
	} else {
		err = k.bids.WalkCollection(ctx, collection, fn)
	}

	return bids, err
}

func (k Querier) Params(ctx sdk.Context) (types.Params, error) {
	return k.GetParams(ctx)
}
