package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NFT is an entry of the ownership registry
type NFT struct {
	Collection string `json:"collection" yaml:"collection"`
	TokenID    string `json:"token_id" yaml:"token_id"`
	Owner      string `json:"owner" yaml:"owner"`
}

// Balance is the amount of one denomination held by an account. Denom is either a
// bank denomination or a cw20 contract address.
type Balance struct {
	Address string      `json:"address" yaml:"address"`
	Denom   string      `json:"denom" yaml:"denom"`
	Amount  sdkmath.Int `json:"amount" yaml:"amount"`
}

type NFTs []NFT

type Balances []Balance

func (n NFT) Validate() error {
	if _, err := sdk.AccAddressFromBech32(n.Collection); err != nil {
		return ErrInvalidAddress.Wrapf("collection: %s", err)
	}
	if n.TokenID == "" {
		return ErrNFTNotFound.Wrap("empty token id")
	}
	if _, err := sdk.AccAddressFromBech32(n.Owner); err != nil {
		return ErrInvalidAddress.Wrapf("owner: %s", err)
	}
	return nil
}

func (b Balance) Validate() error {
	if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
		return ErrInvalidAddress.Wrapf("address: %s", err)
	}
	if b.Denom == "" {
		return ErrInvalidAmount.Wrap("empty denomination")
	}
	if b.Amount.IsNil() || b.Amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("%s%s", b.Amount, b.Denom)
	}
	return nil
}

// GenesisState is the ledger content exported or imported with the market state
type GenesisState struct {
	NFTs     NFTs     `json:"nfts" yaml:"nfts"`
	Balances Balances `json:"balances" yaml:"balances"`
}

func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

func (gs GenesisState) Validate() error {
	nfts := make(map[[2]string]struct{}, len(gs.NFTs))
	for idx, nft := range gs.NFTs {
		if err := nft.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("nft (idx %v): %s", idx, err)
		}
		key := [2]string{nft.Collection, nft.TokenID}
		if _, exists := nfts[key]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate nft %s#%s (idx %v)", nft.Collection, nft.TokenID, idx)
		}
		nfts[key] = struct{}{}
	}

	balances := make(map[[2]string]struct{}, len(gs.Balances))
	for idx, balance := range gs.Balances {
		if err := balance.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("balance (idx %v): %s", idx, err)
		}
		key := [2]string{balance.Address, balance.Denom}
		if _, exists := balances[key]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate balance %s %s (idx %v)", balance.Address, balance.Denom, idx)
		}
		balances[key] = struct{}{}
	}

	return nil
}
