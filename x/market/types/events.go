package types

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// EventType is the type of every event emitted by the module
	EventType = ModuleName

	ActionCreateOrder  = "create_order"
	ActionCreateBid    = "create_bid"
	ActionCancelOrder  = "cancel_order"
	ActionCancelBid    = "cancel_bid"
	ActionExecuteOrder = "execute_order"

	AttributeKeyAction     = "action"
	AttributeKeyCollection = "collection"
	AttributeKeyTokenID    = "token_id"
	AttributeKeySeller     = "seller"
	AttributeKeyBidder     = "bidder"
	AttributeKeyPrice      = "price"
	AttributeKeyBidPrice   = "bid_price"
	AttributeKeyRefund     = "refund"

	AttributeKeyRefundRecipient = "refund_recipient"
)

// Response is the outcome of one operation: the ordered effects the host must
// execute together with the state change, and descriptive attributes.
type Response struct {
	Messages   []wasmvmtypes.CosmosMsg `json:"messages"`
	Attributes []sdk.Attribute         `json:"attributes"`
}

func NewResponse(action string, key AssetKey) *Response {
	return &Response{
		Messages: []wasmvmtypes.CosmosMsg{},
		Attributes: []sdk.Attribute{
			sdk.NewAttribute(AttributeKeyAction, action),
			sdk.NewAttribute(AttributeKeyCollection, key.Collection),
			sdk.NewAttribute(AttributeKeyTokenID, key.TokenID),
		},
	}
}

func (r *Response) AddMessages(msgs ...wasmvmtypes.CosmosMsg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// Attribute returns the value of the first attribute with the given key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

func (r *Response) Event() sdk.Event {
	return sdk.NewEvent(EventType, r.Attributes...)
}

// TxResult is an operation committed by a host at Height
type TxResult struct {
	Height   int64     `json:"height"`
	Response *Response `json:"response"`
}
