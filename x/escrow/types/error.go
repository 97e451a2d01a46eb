package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errInsufficientFunds uint32 = iota + 1
	errNotOwner
	errNFTExists
	errNFTNotFound
	errUnsupportedMsg
	errInvalidAddress
	errInvalidAmount
	errInvalidGenesis
)

var (
	ErrInsufficientFunds = errorsmod.Register(ModuleName, errInsufficientFunds, "insufficient funds")
	ErrNotOwner          = errorsmod.Register(ModuleName, errNotOwner, "sender does not own token")
	ErrNFTExists         = errorsmod.Register(ModuleName, errNFTExists, "token already minted")
	ErrNFTNotFound       = errorsmod.Register(ModuleName, errNFTNotFound, "token not found")
	ErrUnsupportedMsg    = errorsmod.Register(ModuleName, errUnsupportedMsg, "unsupported message")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, errInvalidAddress, "invalid address")
	ErrInvalidAmount     = errorsmod.Register(ModuleName, errInvalidAmount, "invalid amount")
	ErrInvalidGenesis    = errorsmod.Register(ModuleName, errInvalidGenesis, "invalid genesis")
)
