package app

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/escrow"
	"github.com/nftmx/node/x/market"
)

// GenesisState of the marketplace is keyed by module name
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState{
		market.ModuleName: mustMarshal(market.DefaultGenesisState()),
		escrow.ModuleName: mustMarshal(escrow.DefaultGenesisState()),
	}
}

// ValidateGenesis validates the state of every module
func ValidateGenesis(gs GenesisState) error {
	mgs, err := market.GetGenesisStateFromAppState(gs)
	if err != nil {
		return err
	}
	if err := market.ValidateGenesis(mgs); err != nil {
		return err
	}

	egs, err := escrow.GetGenesisStateFromAppState(gs)
	if err != nil {
		return err
	}

	return escrow.ValidateGenesis(egs)
}

// InitGenesis loads gs into a new block
func (app *App) InitGenesis(gs GenesisState) (int64, error) {
	if err := ValidateGenesis(gs); err != nil {
		return 0, err
	}

	mgs, err := market.GetGenesisStateFromAppState(gs)
	if err != nil {
		return 0, err
	}

	egs, err := escrow.GetGenesisStateFromAppState(gs)
	if err != nil {
		return 0, err
	}

	return app.Update(func(ctx sdk.Context) error {
		market.InitGenesis(ctx, app.Keepers.Market, mgs)
		escrow.InitGenesis(ctx, app.Keepers.Escrow, egs)
		return nil
	})
}

// ExportGenesis returns the committed state of every module
func (app *App) ExportGenesis() (GenesisState, error) {
	gs := GenesisState{}

	err := app.View(func(ctx sdk.Context) error {
		var err error
		if gs[market.ModuleName], err = json.Marshal(market.ExportGenesis(ctx, app.Keepers.Market)); err != nil {
			return err
		}
		gs[escrow.ModuleName], err = json.Marshal(escrow.ExportGenesis(ctx, app.Keepers.Escrow))
		return err
	})
	if err != nil {
		return nil, err
	}

	return gs, nil
}

func mustMarshal(obj interface{}) json.RawMessage {
	bz, err := json.Marshal(obj)
	if err != nil {
		panic(err)
	}
	return bz
}
