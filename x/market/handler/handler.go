package handler

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/types"
)

// Handler runs a single market command against ctx
type Handler func(ctx sdk.Context, msg types.Msg) (*types.Response, error)

// NewHandler returns a handler for "nftmarket" type messages
func NewHandler(keepers Keepers) Handler {
	ms := NewServer(keepers)

	return func(ctx sdk.Context, msg types.Msg) (*types.Response, error) {
		switch msg := msg.(type) {
		case *types.MsgCreateOrder:
			return ms.CreateOrder(ctx, msg)

		case *types.MsgCreateBid:
			return ms.CreateBid(ctx, msg)

		case *types.MsgCancelOrder:
			return ms.CancelOrder(ctx, msg)

		case *types.MsgCancelBid:
			return ms.CancelBid(ctx, msg)

		case *types.MsgExecuteOrder:
			return ms.ExecuteOrder(ctx, msg)

		default:
			return nil, types.ErrUnknownRequest.Wrapf("unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
