package handler

import (
	"context"

	"github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/types"
)

// OwnershipKeeper answers who currently owns an asset
type OwnershipKeeper interface {
	OwnerOf(ctx context.Context, key types.AssetKey) (string, error)
}

// Keepers include all modules keepers
type Keepers struct {
	Market    keeper.IKeeper
	Ownership OwnershipKeeper
}
