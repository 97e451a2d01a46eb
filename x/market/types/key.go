package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName is the module name constant used in many places
	ModuleName = "nftmarket"

	// StoreKey is the store key string for nftmarket
	StoreKey = ModuleName

	// RouterKey is the message route for nftmarket
	RouterKey = ModuleName

	// EngineVersion is reported by the version query
	EngineVersion = "1.72"
)

const (
	ParamsPrefix = 0x01
	OrderPrefix  = 0x11
	BidPrefix    = 0x12
)

// EscrowAddress returns the module account holding listed assets and bid deposits.
func EscrowAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
