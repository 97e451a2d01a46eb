package keeper

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/types"
)

//go:generate mockery --name BankKeeper --output ./mocks
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

//go:generate mockery --name ContractKeeper --output ./mocks
type ContractKeeper interface {
	Execute(ctx context.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}

//go:generate mockery --name WasmViewKeeper --output ./mocks
type WasmViewKeeper interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

//go:generate mockery --name OwnershipKeeper --output ./mocks
type OwnershipKeeper interface {
	OwnerOf(ctx context.Context, key types.AssetKey) (string, error)
}

//go:generate mockery --name Dispatcher --output ./mocks
type Dispatcher interface {
	Dispatch(ctx context.Context, from string, msg wasmvmtypes.CosmosMsg) error
}
