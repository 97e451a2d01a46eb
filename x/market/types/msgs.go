package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is a command accepted by the settlement engine.
type Msg interface {
	Type() string
	GetSender() string
	GetAssetKey() AssetKey
	ValidateBasic() error
}

var (
	_ Msg = &MsgCreateOrder{}
	_ Msg = &MsgCreateBid{}
	_ Msg = &MsgCancelOrder{}
	_ Msg = &MsgCancelBid{}
	_ Msg = &MsgExecuteOrder{}
)

// MsgCreateOrder lists an asset for sale.
type MsgCreateOrder struct {
	Sender string `json:"sender,omitempty"`
	AssetKey
	Price      Asset      `json:"price"`
	Expiration Expiration `json:"expire_at"`
}

// MsgCreateBid places a bid on a listed asset, superseding any previous bid.
type MsgCreateBid struct {
	Sender string `json:"sender,omitempty"`
	AssetKey
	Price      Asset      `json:"price"`
	Expiration Expiration `json:"expire_at"`
}

// MsgCancelOrder withdraws a listing and returns the asset to the seller.
type MsgCancelOrder struct {
	Sender string `json:"sender,omitempty"`
	AssetKey
}

// MsgCancelBid withdraws a bid and refunds the bidder.
type MsgCancelBid struct {
	Sender string `json:"sender,omitempty"`
	AssetKey
}

// MsgExecuteOrder accepts the standing bid on an order.
type MsgExecuteOrder struct {
	Sender string `json:"sender,omitempty"`
	AssetKey
}

func (msg MsgCreateOrder) Type() string  { return ActionCreateOrder }
func (msg MsgCreateBid) Type() string    { return ActionCreateBid }
func (msg MsgCancelOrder) Type() string  { return ActionCancelOrder }
func (msg MsgCancelBid) Type() string    { return ActionCancelBid }
func (msg MsgExecuteOrder) Type() string { return ActionExecuteOrder }

func (msg MsgCreateOrder) GetSender() string  { return msg.Sender }
func (msg MsgCreateBid) GetSender() string    { return msg.Sender }
func (msg MsgCancelOrder) GetSender() string  { return msg.Sender }
func (msg MsgCancelBid) GetSender() string    { return msg.Sender }
func (msg MsgExecuteOrder) GetSender() string { return msg.Sender }

func (msg MsgCreateOrder) GetAssetKey() AssetKey  { return msg.AssetKey }
func (msg MsgCreateBid) GetAssetKey() AssetKey    { return msg.AssetKey }
func (msg MsgCancelOrder) GetAssetKey() AssetKey  { return msg.AssetKey }
func (msg MsgCancelBid) GetAssetKey() AssetKey    { return msg.AssetKey }
func (msg MsgExecuteOrder) GetAssetKey() AssetKey { return msg.AssetKey }

// ValidateBasic does basic validation. Price positivity is checked by the engine
// so that ownership failures take precedence.
func (msg MsgCreateOrder) ValidateBasic() error {
	if err := validateSenderAndKey(msg.Sender, msg.AssetKey); err != nil {
		return err
	}
	return msg.Price.Validate()
}

// ValidateBasic checks the denomination only. Amounts below the asking price,
// negative ones included, are rejected by the engine with ErrMinPrice.
func (msg MsgCreateBid) ValidateBasic() error {
	if err := validateSenderAndKey(msg.Sender, msg.AssetKey); err != nil {
		return err
	}
	return msg.Price.Info.Validate()
}

func (msg MsgCancelOrder) ValidateBasic() error {
	return validateSenderAndKey(msg.Sender, msg.AssetKey)
}

func (msg MsgCancelBid) ValidateBasic() error {
	return validateSenderAndKey(msg.Sender, msg.AssetKey)
}

func (msg MsgExecuteOrder) ValidateBasic() error {
	return validateSenderAndKey(msg.Sender, msg.AssetKey)
}

func validateSenderAndKey(sender string, key AssetKey) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	return key.Validate()
}

// ExecuteMsg is the JSON envelope for engine commands, e.g. {"create_order":{...}}.
type ExecuteMsg struct {
	CreateOrder  *MsgCreateOrder  `json:"create_order,omitempty"`
	CreateBid    *MsgCreateBid    `json:"create_bid,omitempty"`
	CancelOrder  *MsgCancelOrder  `json:"cancel_order,omitempty"`
	CancelBid    *MsgCancelBid    `json:"cancel_bid,omitempty"`
	ExecuteOrder *MsgExecuteOrder `json:"execute_order,omitempty"`
}

// ParseExecuteMsg decodes an envelope and stamps the verified sender on the command.
func ParseExecuteMsg(bz []byte, sender string) (Msg, error) {
	var env ExecuteMsg
	if err := json.Unmarshal(bz, &env); err != nil {
		return nil, ErrUnknownRequest.Wrapf("decode: %s", err)
	}

	var msgs []Msg
	if env.CreateOrder != nil {
		env.CreateOrder.Sender = sender
		msgs = append(msgs, env.CreateOrder)
	}
	if env.CreateBid != nil {
		env.CreateBid.Sender = sender
		msgs = append(msgs, env.CreateBid)
	}
	if env.CancelOrder != nil {
		env.CancelOrder.Sender = sender
		msgs = append(msgs, env.CancelOrder)
	}
	if env.CancelBid != nil {
		env.CancelBid.Sender = sender
		msgs = append(msgs, env.CancelBid)
	}
	if env.ExecuteOrder != nil {
		env.ExecuteOrder.Sender = sender
		msgs = append(msgs, env.ExecuteOrder)
	}

	if len(msgs) != 1 {
		return nil, ErrUnknownRequest.Wrapf("expected exactly one command, got %d", len(msgs))
	}

	return msgs[0], nil
}

// WrapExecuteMsg is the inverse of ParseExecuteMsg.
func WrapExecuteMsg(msg Msg) (ExecuteMsg, error) {
	switch msg := msg.(type) {
	case *MsgCreateOrder:
		return ExecuteMsg{CreateOrder: msg}, nil
	case *MsgCreateBid:
		return ExecuteMsg{CreateBid: msg}, nil
	case *MsgCancelOrder:
		return ExecuteMsg{CancelOrder: msg}, nil
	case *MsgCancelBid:
		return ExecuteMsg{CancelBid: msg}, nil
	case *MsgExecuteOrder:
		return ExecuteMsg{ExecuteOrder: msg}, nil
	}
	return ExecuteMsg{}, fmt.Errorf("%w: %T", ErrUnknownRequest, msg)
}
