package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errNoOwner uint32 = iota + 1
	errInvalidPrice
	errInvalidExpiration
	errExpired
	errMinPrice
	errZeroBidAmount
	errInvalidBidAmount
	errUnauthorized
	errNoBid
	errOrderNotFound
	errBidNotFound
	errOrderExists
	errDenomMismatch
	errInvalidAssetKey
	errInvalidAddress
	errInvalidDenomination
	errUnknownRequest
	errInvalidGenesis
)

var (
	// ErrNoOwner is the error when the caller does not own the listed asset
	ErrNoOwner = errorsmod.Register(ModuleName, errNoOwner, "caller is not the asset owner")
	// ErrInvalidPrice is the error when a listing price is not positive
	ErrInvalidPrice = errorsmod.Register(ModuleName, errInvalidPrice, "invalid price")
	// ErrInvalidExpiration is the error when a listing expires too soon
	ErrInvalidExpiration = errorsmod.Register(ModuleName, errInvalidExpiration, "invalid expiration")
	// ErrExpired is the error when bidding on an expired order
	ErrExpired = errorsmod.Register(ModuleName, errExpired, "order expired")
	// ErrMinPrice is the error when a bid is below the order price
	ErrMinPrice = errorsmod.Register(ModuleName, errMinPrice, "bid below minimum price")
	// ErrZeroBidAmount is the error when a bid amount is not positive
	ErrZeroBidAmount = errorsmod.Register(ModuleName, errZeroBidAmount, "zero bid amount")
	// ErrInvalidBidAmount is the error when a bid does not exceed the live bid
	ErrInvalidBidAmount = errorsmod.Register(ModuleName, errInvalidBidAmount, "bid must exceed current bid")
	// ErrUnauthorized is the error when the caller may not act on a record
	ErrUnauthorized = errorsmod.Register(ModuleName, errUnauthorized, "unauthorized")
	// ErrNoBid is the error when executing an order without a bid
	ErrNoBid = errorsmod.Register(ModuleName, errNoBid, "order has no bid")
	// ErrOrderNotFound order not found
	ErrOrderNotFound = errorsmod.Register(ModuleName, errOrderNotFound, "order not found")
	// ErrBidNotFound bid not found
	ErrBidNotFound = errorsmod.Register(ModuleName, errBidNotFound, "bid not found")
	// ErrOrderExists is the error when listing an asset that already has an order
	ErrOrderExists = errorsmod.Register(ModuleName, errOrderExists, "order exists")
	// ErrDenomMismatch is the error when a bid is denominated differently from the order
	ErrDenomMismatch = errorsmod.Register(ModuleName, errDenomMismatch, "bid denomination does not match order")
	ErrInvalidAssetKey     = errorsmod.Register(ModuleName, errInvalidAssetKey, "invalid asset key")
	ErrInvalidAddress      = errorsmod.Register(ModuleName, errInvalidAddress, "invalid address")
	ErrInvalidDenomination = errorsmod.Register(ModuleName, errInvalidDenomination, "invalid denomination")
	ErrUnknownRequest      = errorsmod.Register(ModuleName, errUnknownRequest, "unknown request")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, errInvalidGenesis, "invalid genesis state")
)
