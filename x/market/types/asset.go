package types

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NativeToken identifies a bank denomination.
type NativeToken struct {
	Denom string `json:"denom"`
}

// Token identifies a cw20 contract.
type Token struct {
	ContractAddr string `json:"contract_addr"`
}

// AssetInfo is the kind of value an Asset carries. Exactly one variant is set.
type AssetInfo struct {
	NativeToken *NativeToken `json:"native_token,omitempty"`
	Token       *Token       `json:"token,omitempty"`
}

func NewNativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeToken{Denom: denom}}
}

func NewTokenAssetInfo(contract string) AssetInfo {
	return AssetInfo{Token: &Token{ContractAddr: contract}}
}

// IsNative reports whether the info refers to a bank denomination
func (i AssetInfo) IsNative() bool {
	return i.NativeToken != nil
}

func (i AssetInfo) Validate() error {
	switch {
	case i.NativeToken != nil && i.Token != nil:
		return ErrInvalidDenomination.Wrap("asset info must have exactly one variant")
	case i.NativeToken != nil:
		if err := sdk.ValidateDenom(i.NativeToken.Denom); err != nil {
			return ErrInvalidDenomination.Wrap(err.Error())
		}
	case i.Token != nil:
		if _, err := sdk.AccAddressFromBech32(i.Token.ContractAddr); err != nil {
			return ErrInvalidDenomination.Wrapf("token contract: %s", err)
		}
	default:
		return ErrInvalidDenomination.Wrap("asset info is empty")
	}

	return nil
}

// Equal compares variant and denomination.
func (i AssetInfo) Equal(other AssetInfo) bool {
	switch {
	case i.NativeToken != nil && other.NativeToken != nil:
		return i.NativeToken.Denom == other.NativeToken.Denom
	case i.Token != nil && other.Token != nil:
		return i.Token.ContractAddr == other.Token.ContractAddr
	}
	return false
}

func (i AssetInfo) String() string {
	switch {
	case i.NativeToken != nil:
		return i.NativeToken.Denom
	case i.Token != nil:
		return i.Token.ContractAddr
	}
	return ""
}

// Asset is an amount of native coin or cw20 token.
type Asset struct {
	Info   AssetInfo   `json:"info"`
	Amount sdkmath.Int `json:"amount"`
}

func NewNativeAsset(denom string, amount sdkmath.Int) Asset {
	return Asset{Info: NewNativeAssetInfo(denom), Amount: amount}
}

func NewTokenAsset(contract string, amount sdkmath.Int) Asset {
	return Asset{Info: NewTokenAssetInfo(contract), Amount: amount}
}

// Value returns the amount, treating an unset amount as zero.
func (a Asset) Value() sdkmath.Int {
	if a.Amount.IsNil() {
		return sdkmath.ZeroInt()
	}
	return a.Amount
}

func (a Asset) IsPositive() bool {
	return a.Value().IsPositive()
}

func (a Asset) Validate() error {
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Value().IsNegative() {
		return ErrInvalidPrice.Wrapf("negative amount %s", a.Amount)
	}
	return nil
}

func (a Asset) String() string {
	return a.Value().String() + a.Info.String()
}

// ToTransferMsg builds the message moving this asset from escrow to recipient.
func (a Asset) ToTransferMsg(recipient string) (wasmvmtypes.CosmosMsg, error) {
	switch {
	case a.Info.NativeToken != nil:
		return wasmvmtypes.CosmosMsg{
			Bank: &wasmvmtypes.BankMsg{
				Send: &wasmvmtypes.SendMsg{
					ToAddress: recipient,
					Amount: []wasmvmtypes.Coin{{
						Denom:  a.Info.NativeToken.Denom,
						Amount: a.Value().String(),
					}},
				},
			},
		}, nil
	case a.Info.Token != nil:
		bz, err := json.Marshal(CW20ExecuteMsg{
			Transfer: &CW20Transfer{
				Recipient: recipient,
				Amount:    a.Value().String(),
			},
		})
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}

		return wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: a.Info.Token.ContractAddr,
					Msg:          bz,
					Funds:        []wasmvmtypes.Coin{},
				},
			},
		}, nil
	}

	return wasmvmtypes.CosmosMsg{}, ErrInvalidDenomination.Wrap("asset info is empty")
}

// TransferNFTMsg builds the cw721 transfer of the asset identified by key to recipient.
func TransferNFTMsg(key AssetKey, recipient string) (wasmvmtypes.CosmosMsg, error) {
	bz, err := json.Marshal(CW721ExecuteMsg{
		TransferNft: &CW721TransferNft{
			Recipient: recipient,
			TokenID:   key.TokenID,
		},
	})
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, fmt.Errorf("encode transfer_nft: %w", err)
	}

	return wasmvmtypes.CosmosMsg{
		Wasm: &wasmvmtypes.WasmMsg{
			Execute: &wasmvmtypes.ExecuteMsg{
				ContractAddr: key.Collection,
				Msg:          bz,
				Funds:        []wasmvmtypes.Coin{},
			},
		},
	}, nil
}
