package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/keeper/keys"
	"github.com/nftmx/node/x/market/types"
)

type IKeeper interface {
	NewQuerier() Querier
	Orders() OrderStore
	Bids() BidStore
	WithOrders(ctx sdk.Context, fn func(types.Order) bool) error
	WithBids(ctx sdk.Context, fn func(types.Bid) bool) error
	GetParams(ctx sdk.Context) (types.Params, error)
	SetParams(ctx sdk.Context, params types.Params) error
	EscrowAddress() sdk.AccAddress
	Logger(ctx sdk.Context) log.Logger
}

// Keeper of the nftmarket store. It is the only owner of the order and bid tables.
type Keeper struct {
	schema collections.Schema
	params collections.Item[types.Params]
	orders OrderStore
	bids   BidStore
	escrow sdk.AccAddress
}

// NewKeeper creates and returns an instance for nftmarket keeper
func NewKeeper(ssvc corestore.KVStoreService) IKeeper {
	sb := collections.NewSchemaBuilder(ssvc)

	params := collections.NewItem(sb, collections.NewPrefix(types.ParamsPrefix), "params", JSONValue[types.Params]("params"))
	orders := collections.NewMap(sb, collections.NewPrefix(types.OrderPrefix), "orders", keys.AssetPrimaryKeyCodec, JSONValue[types.Order]("order"))
	bids := collections.NewMap(sb, collections.NewPrefix(types.BidPrefix), "bids", keys.AssetPrimaryKeyCodec, JSONValue[types.Bid]("bid"))

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	return Keeper{
		schema: schema,
		params: params,
		orders: newStore(orders, types.ErrOrderNotFound),
		bids:   newStore(bids, types.ErrBidNotFound),
		escrow: types.EscrowAddress(),
	}
}

func (k Keeper) NewQuerier() Querier {
	return Querier{k}
}

// Orders returns the order store
func (k Keeper) Orders() OrderStore {
	return k.orders
}

// Bids returns the bid store
func (k Keeper) Bids() BidStore {
	return k.bids
}

// EscrowAddress returns the account holding listed assets and bid deposits
func (k Keeper) EscrowAddress() sdk.AccAddress {
	return k.escrow
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// WithOrders iterates all orders in the store
func (k Keeper) WithOrders(ctx sdk.Context, fn func(types.Order) bool) error {
	return k.orders.Walk(ctx, func(_ types.AssetKey, order types.Order) bool {
		return fn(order)
	})
}

// WithBids iterates all bids in the store
func (k Keeper) WithBids(ctx sdk.Context, fn func(types.Bid) bool) error {
	return k.bids.Walk(ctx, func(_ types.AssetKey, bid types.Bid) bool {
		return fn(bid)
	})
}

// GetParams returns the current module parameters, or the defaults if none were set.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	params, err := k.params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}
	return params, err
}

// SetParams sets the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}
