package escrow

import (
	"github.com/nftmx/node/x/escrow/types"
)

const (
	// StoreKey represents storekey of escrow ledger
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)
