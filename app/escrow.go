package app

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	mtypes "github.com/nftmx/node/x/market/types"
)

// Mint registers a new token owned by owner
func (app *App) Mint(key mtypes.AssetKey, owner string) (int64, error) {
	return app.Update(func(ctx sdk.Context) error {
		return app.Keepers.Escrow.Mint(ctx, key, owner)
	})
}

// Fund credits addr with amount of denom. Denom is a bank denomination or a cw20 contract.
func (app *App) Fund(addr, denom string, amount sdkmath.Int) (int64, error) {
	return app.Update(func(ctx sdk.Context) error {
		return app.Keepers.Escrow.Fund(ctx, addr, denom, amount)
	})
}

func (app *App) Balance(addr, denom string) (sdkmath.Int, error) {
	var res sdkmath.Int
	err := app.View(func(ctx sdk.Context) error {
		var err error
		res, err = app.Keepers.Escrow.Balance(ctx, addr, denom)
		return err
	})
	return res, err
}

func (app *App) OwnerOf(key mtypes.AssetKey) (string, error) {
	var res string
	err := app.View(func(ctx sdk.Context) error {
		var err error
		res, err = app.Keepers.Escrow.OwnerOf(ctx, key)
		return err
	})
	return res, err
}
