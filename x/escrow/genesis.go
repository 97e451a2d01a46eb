package escrow

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/escrow/keeper"
	"github.com/nftmx/node/x/escrow/types"
)

// ValidateGenesis does validation check of the Genesis and returns an error in case of failure
func ValidateGenesis(data *types.GenesisState) error {
	return data.Validate()
}

// InitGenesis replaces the ownership registry and balances with data
func InitGenesis(ctx sdk.Context, keeper keeper.Keeper, data *types.GenesisState) {
	if err := keeper.Reset(ctx); err != nil {
		panic(fmt.Sprintf("error resetting ledger: %s", err.Error()))
	}

	for idx := range data.NFTs {
		if err := keeper.SaveNFT(ctx, data.NFTs[idx]); err != nil {
			panic(fmt.Sprintf("error saving nft: %s", err.Error()))
		}
	}
	for idx := range data.Balances {
		if err := keeper.SaveBalance(ctx, data.Balances[idx]); err != nil {
			panic(fmt.Sprintf("error saving balance: %s", err.Error()))
		}
	}
}

// ExportGenesis returns the ledger content
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	state := &types.GenesisState{}

	err := k.WithNFTs(ctx, func(obj types.NFT) bool {
		state.NFTs = append(state.NFTs, obj)
		return false
	})
	if err != nil {
		panic(err)
	}

	err = k.WithBalances(ctx, func(obj types.Balance) bool {
		state.Balances = append(state.Balances, obj)
		return false
	})
	if err != nil {
		panic(err)
	}

	return state
}

// DefaultGenesisState returns default genesis state for the escrow ledger
func DefaultGenesisState() *types.GenesisState {
	return types.DefaultGenesisState()
}

// GetGenesisStateFromAppState returns x/escrow GenesisState given raw application
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
