package market

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/types"
)

// ValidateGenesis does validation check of the Genesis and returns an error in case of failure
func ValidateGenesis(data *types.GenesisState) error {
	return data.Validate()
}

// DefaultGenesisState returns default genesis state for the market module
func DefaultGenesisState() *types.GenesisState {
	return types.DefaultGenesisState()
}

// InitGenesis replaces the orders and bids in the store with data
func InitGenesis(ctx sdk.Context, k keeper.IKeeper, data *types.GenesisState) {
	if err := k.Orders().Clear(ctx); err != nil {
		panic(fmt.Sprintf("error clearing orders: %s", err.Error()))
	}
	if err := k.Bids().Clear(ctx); err != nil {
		panic(fmt.Sprintf("error clearing bids: %s", err.Error()))
	}

	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(fmt.Sprintf("error setting params: %s", err.Error()))
	}

	for _, order := range data.Orders {
		if err := k.Orders().Put(ctx, order.AssetKey, order); err != nil {
			panic(fmt.Sprintf("error saving order %s: %s", order.AssetKey, err.Error()))
		}
	}

	for _, bid := range data.Bids {
		if err := k.Bids().Put(ctx, bid.AssetKey, bid); err != nil {
			panic(fmt.Sprintf("error saving bid %s: %s", bid.AssetKey, err.Error()))
		}
	}
}

// ExportGenesis returns genesis state for the market module
func ExportGenesis(ctx sdk.Context, k keeper.IKeeper) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	state := &types.GenesisState{Params: params}

	if err := k.WithOrders(ctx, func(order types.Order) bool {
		state.Orders = append(state.Orders, order)
		return false
	}); err != nil {
		panic(err)
	}

	if err := k.WithBids(ctx, func(bid types.Bid) bool {
		state.Bids = append(state.Bids, bid)
		return false
	}); err != nil {
		panic(err)
	}

	return state
}

// GetGenesisStateFromAppState returns x/market GenesisState given raw application
// genesis state.
func GetGenesisStateFromAppState(appState map[string]json.RawMessage) (*types.GenesisState, error) {
	genesisState := DefaultGenesisState()

	if appState[ModuleName] != nil {
		if err := json.Unmarshal(appState[ModuleName], genesisState); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
		}
	}

	return genesisState, nil
}
