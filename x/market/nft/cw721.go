package nft

import (
	"context"
	"encoding/json"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/nftmx/node/x/market/types"
)

// WasmViewKeeper is the read-only contract query surface of the wasm module
type WasmViewKeeper interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

var _ WasmViewKeeper = (wasmtypes.ViewKeeper)(nil)

// CW721Querier resolves asset ownership with the cw721 owner_of query of the
// collection contract.
type CW721Querier struct {
	wasm WasmViewKeeper
}

// NewCW721Querier is the chain-side counterpart of the escrow ledger's OwnerOf,
// for hosts embedding the engine in a wasmd chain.
func NewCW721Querier(wasm WasmViewKeeper) CW721Querier {
	return CW721Querier{wasm: wasm}
}

func (q CW721Querier) OwnerOf(ctx context.Context, key types.AssetKey) (string, error) {
	contract, err := sdk.AccAddressFromBech32(key.Collection)
	if err != nil {
		return "", types.ErrInvalidAssetKey.Wrapf("collection: %s", err)
	}

	req, err := json.Marshal(types.CW721QueryMsg{
		OwnerOf: &types.CW721OwnerOf{TokenID: key.TokenID},
	})
	if err != nil {
		return "", err
	}

	bz, err := q.wasm.QuerySmart(ctx, contract, req)
	if err != nil {
		return "", errors.Wrapf(err, "owner_of %s", key)
	}

	var res types.CW721OwnerOfResponse
	if err := json.Unmarshal(bz, &res); err != nil {
		return "", errors.Wrapf(err, "decode owner_of %s", key)
	}

	return res.Owner, nil
}
