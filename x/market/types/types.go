package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Order is a seller's listing of one asset at a minimum price.
type Order struct {
	AssetKey
	Seller     string     `json:"seller"`
	Price      Asset      `json:"price"`
	Expiration Expiration `json:"expire_at"`
}

// Bid is the single standing offer on a listed asset. Its price is held in escrow.
type Bid struct {
	AssetKey
	Bidder     string     `json:"bidder"`
	Seller     string     `json:"seller"`
	Price      Asset      `json:"price"`
	Expiration Expiration `json:"expire_at"`
}

type Orders []Order

type Bids []Bid

func (o Order) Validate() error {
	if err := o.AssetKey.Validate(); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(o.Seller); err != nil {
		return ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := o.Price.Validate(); err != nil {
		return err
	}
	if !o.Price.IsPositive() {
		return ErrInvalidPrice.Wrapf("order %s", o.AssetKey)
	}
	return nil
}

func (b Bid) Validate() error {
	if err := b.AssetKey.Validate(); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(b.Bidder); err != nil {
		return ErrInvalidAddress.Wrapf("bidder: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(b.Seller); err != nil {
		return ErrInvalidAddress.Wrapf("seller: %s", err)
	}
	if err := b.Price.Validate(); err != nil {
		return err
	}
	if !b.Price.IsPositive() {
		return ErrZeroBidAmount.Wrapf("bid %s", b.AssetKey)
	}
	return nil
}
