package handler

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/x/market/types"
)

// Server is the settlement engine. Every operation checks all of its
// preconditions before writing, and returns the effects the host must execute
// atomically with the writes.
type Server interface {
	CreateOrder(context.Context, *types.MsgCreateOrder) (*types.Response, error)
	CreateBid(context.Context, *types.MsgCreateBid) (*types.Response, error)
	CancelOrder(context.Context, *types.MsgCancelOrder) (*types.Response, error)
	CancelBid(context.Context, *types.MsgCancelBid) (*types.Response, error)
	ExecuteOrder(context.Context, *types.MsgExecuteOrder) (*types.Response, error)
}

type msgServer struct {
	keepers Keepers
}

// NewServer returns an implementation of the settlement engine
// for the provided keepers.
func NewServer(k Keepers) Server {
	return &msgServer{keepers: k}
}

var _ Server = msgServer{}

func (ms msgServer) CreateOrder(goCtx context.Context, msg *types.MsgCreateOrder) (*types.Response, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	params, err := ms.keepers.Market.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := ms.keepers.Ownership.OwnerOf(ctx, msg.AssetKey)
	if err != nil {
		return nil, types.ErrNoOwner.Wrapf("%s: %s", msg.AssetKey, err)
	}
	if owner != msg.Sender {
		return nil, types.ErrNoOwner.Wrapf("%s is owned by %s", msg.AssetKey, owner)
	}

	if !msg.Price.IsPositive() {
		return nil, types.ErrInvalidPrice.Wrapf("%s", msg.Price)
	}

	if err := params.ValidatePrice(msg.Price); err != nil {
		return nil, err
	}

	if err := msg.Expiration.ValidateListing(ctx.BlockTime(), params.MinExpirationDelta); err != nil {
		return nil, err
	}

	orders := ms.keepers.Market.Orders()

	exists, err := orders.Has(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.ErrOrderExists.Wrapf("%s", msg.AssetKey)
	}

	order := types.Order{
		AssetKey:   msg.AssetKey,
		Seller:     msg.Sender,
		Price:      msg.Price,
		Expiration: msg.Expiration,
	}

	if err := orders.Put(ctx, order.AssetKey, order); err != nil {
		return nil, err
	}

	resp := types.NewResponse(types.ActionCreateOrder, order.AssetKey).
		AddAttribute(types.AttributeKeySeller, order.Seller).
		AddAttribute(types.AttributeKeyPrice, order.Price.String())

	ms.emit(ctx, resp)

	return resp, nil
}

func (ms msgServer) CreateBid(goCtx context.Context, msg *types.MsgCreateBid) (*types.Response, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	order, err := ms.keepers.Market.Orders().Get(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}

	now := ctx.BlockTime()

	if order.Expiration.IsTimeExpired(now) {
		return nil, types.ErrExpired.Wrapf("order %s expired at %s", order.AssetKey, order.Expiration)
	}

	if !msg.Price.Info.Equal(order.Price.Info) {
		return nil, types.ErrDenomMismatch.Wrapf("order is priced in %s, bid in %s", order.Price.Info, msg.Price.Info)
	}

	if msg.Price.Value().LT(order.Price.Value()) {
		return nil, types.ErrMinPrice.Wrapf("min_bid_amount: %s", order.Price.Value())
	}

	resp := types.NewResponse(types.ActionCreateBid, msg.AssetKey)

	prev, found, err := ms.keepers.Market.Bids().Find(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}

	switch {
	case found && prev.Expiration.IsTimeExpired(now):
		// an expired bid sets no minimum raise
		if !msg.Price.IsPositive() {
			return nil, types.ErrZeroBidAmount
		}
	case found:
		if !msg.Price.Value().GT(prev.Price.Value()) {
			return nil, types.ErrInvalidBidAmount.Wrapf("current bid is %s", prev.Price)
		}
	default:
		if !msg.Price.IsPositive() {
			return nil, types.ErrZeroBidAmount
		}
	}

	if found {
		if err := ms.cancelBid(ctx, prev.AssetKey, resp); err != nil {
			return nil, err
		}
	}

	bid := types.Bid{
		AssetKey:   msg.AssetKey,
		Bidder:     msg.Sender,
		Seller:     order.Seller,
		Price:      msg.Price,
		Expiration: msg.Expiration,
	}

	if err := ms.keepers.Market.Bids().Put(ctx, bid.AssetKey, bid); err != nil {
		return nil, err
	}

	resp.AddAttribute(types.AttributeKeyBidder, bid.Bidder).
		AddAttribute(types.AttributeKeyBidPrice, bid.Price.String())

	ms.emit(ctx, resp)

	return resp, nil
}

func (ms msgServer) CancelOrder(goCtx context.Context, msg *types.MsgCancelOrder) (*types.Response, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	order, err := ms.keepers.Market.Orders().Get(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}

	if order.Seller != msg.Sender {
		return nil, types.ErrUnauthorized.Wrapf("%s is not the seller of %s", msg.Sender, order.AssetKey)
	}

	transfer, err := types.TransferNFTMsg(order.AssetKey, order.Seller)
	if err != nil {
		return nil, err
	}

	resp := types.NewResponse(types.ActionCancelOrder, order.AssetKey)

	found, err := ms.keepers.Market.Bids().Has(ctx, order.AssetKey)
	if err != nil {
		return nil, err
	}

	if found {
		if err := ms.cancelBid(ctx, order.AssetKey, resp); err != nil {
			return nil, err
		}
	}

	if err := ms.keepers.Market.Orders().Remove(ctx, order.AssetKey); err != nil {
		return nil, err
	}

	resp.AddMessages(transfer)

	ms.emit(ctx, resp)

	return resp, nil
}

// CancelBid refunds and removes a bid. Only the bidder may cancel it.
func (ms msgServer) CancelBid(goCtx context.Context, msg *types.MsgCancelBid) (*types.Response, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	bid, err := ms.keepers.Market.Bids().Get(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}

	if bid.Bidder != msg.Sender {
		return nil, types.ErrUnauthorized.Wrapf("%s is not the bidder on %s", msg.Sender, bid.AssetKey)
	}

	resp := types.NewResponse(types.ActionCancelBid, bid.AssetKey).
		AddAttribute(types.AttributeKeyBidder, bid.Bidder)

	if err := ms.cancelBid(ctx, bid.AssetKey, resp); err != nil {
		return nil, err
	}

	ms.emit(ctx, resp)

	return resp, nil
}

func (ms msgServer) ExecuteOrder(goCtx context.Context, msg *types.MsgExecuteOrder) (*types.Response, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	order, found, err := ms.keepers.Market.Orders().Find(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrUnauthorized.Wrapf("no order for %s", msg.AssetKey)
	}

	if order.Seller != msg.Sender {
		return nil, types.ErrUnauthorized.Wrapf("%s is not the seller of %s", msg.Sender, order.AssetKey)
	}

	bid, found, err := ms.keepers.Market.Bids().Find(ctx, msg.AssetKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrNoBid.Wrapf("%s", order.AssetKey)
	}

	payment, err := bid.Price.ToTransferMsg(order.Seller)
	if err != nil {
		return nil, err
	}

	transfer, err := types.TransferNFTMsg(order.AssetKey, bid.Bidder)
	if err != nil {
		return nil, err
	}

	if err := ms.keepers.Market.Bids().Remove(ctx, bid.AssetKey); err != nil {
		return nil, err
	}

	if err := ms.keepers.Market.Orders().Remove(ctx, order.AssetKey); err != nil {
		return nil, err
	}

	resp := types.NewResponse(types.ActionExecuteOrder, order.AssetKey).
		AddMessages(payment, transfer).
		AddAttribute(types.AttributeKeySeller, order.Seller).
		AddAttribute(types.AttributeKeyBidder, bid.Bidder).
		AddAttribute(types.AttributeKeyPrice, order.Price.String()).
		AddAttribute(types.AttributeKeyBidPrice, bid.Price.String())

	ms.emit(ctx, resp)

	return resp, nil
}

// cancelBid queues the refund of the bid on key and removes it.
func (ms msgServer) cancelBid(ctx sdk.Context, key types.AssetKey, resp *types.Response) error {
	bid, err := ms.keepers.Market.Bids().Get(ctx, key)
	if err != nil {
		return err
	}

	refund, err := bid.Price.ToTransferMsg(bid.Bidder)
	if err != nil {
		return err
	}

	if err := ms.keepers.Market.Bids().Remove(ctx, key); err != nil {
		return err
	}

	resp.AddMessages(refund).
		AddAttribute(types.AttributeKeyRefund, bid.Price.String()).
		AddAttribute(types.AttributeKeyRefundRecipient, bid.Bidder)

	return nil
}

func (ms msgServer) emit(ctx sdk.Context, resp *types.Response) {
	ctx.EventManager().EmitEvent(resp.Event())

	action, _ := resp.Attribute(types.AttributeKeyAction)

	kv := make([]any, 0, 2*len(resp.Attributes))
	for _, attr := range resp.Attributes {
		kv = append(kv, attr.Key, attr.Value)
	}

	ms.keepers.Market.Logger(ctx).Info(action, kv...)
}
