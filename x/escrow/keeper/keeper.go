package keeper

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/nftmx/node/x/escrow/types"
	mtypes "github.com/nftmx/node/x/market/types"
)

type NFTHook func(context.Context, types.NFT)

// Keeper is a minimal ownership registry and balance ledger standing in for the
// cw721 collections, cw20 tokens and bank module of a chain.
type Keeper interface {
	Mint(ctx context.Context, key mtypes.AssetKey, owner string) error
	OwnerOf(ctx context.Context, key mtypes.AssetKey) (string, error)
	TransferNFT(ctx context.Context, key mtypes.AssetKey, from, to string) error
	Fund(ctx context.Context, addr, denom string, amount sdkmath.Int) error
	Balance(ctx context.Context, addr, denom string) (sdkmath.Int, error)
	Send(ctx context.Context, from, to, denom string, amount sdkmath.Int) error

	// Deposit moves funds from an account into the market escrow account
	Deposit(ctx context.Context, from string, funds ...mtypes.Asset) error
	// DepositNFT moves a token from its owner into the market escrow account
	DepositNFT(ctx context.Context, key mtypes.AssetKey, from string) error
	// Dispatch executes a market effect sent by from
	Dispatch(ctx context.Context, from string, msg wasmvmtypes.CosmosMsg) error

	EscrowAddress() string
	AddOnNFTTransferredHook(NFTHook) Keeper

	// for genesis
	WithNFTs(ctx context.Context, fn func(types.NFT) bool) error
	WithBalances(ctx context.Context, fn func(types.Balance) bool) error
	SaveNFT(ctx context.Context, nft types.NFT) error
	SaveBalance(ctx context.Context, balance types.Balance) error
	// Reset drops every token and balance
	Reset(ctx context.Context) error
}

type pairKey = collections.Pair[string, string]

func NewKeeper(ssvc corestore.KVStoreService, escrow sdk.AccAddress) Keeper {
	sb := collections.NewSchemaBuilder(ssvc)

	k := &keeper{
		escrow: escrow.String(),
		nfts: collections.NewMap(sb, collections.NewPrefix(types.NFTPrefix), "nfts",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), collections.StringValue),
		balances: collections.NewMap(sb, collections.NewPrefix(types.BalancePrefix), "balances",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

type keeper struct {
	schema collections.Schema
	escrow string

	// (collection, token id) => owner
	nfts collections.Map[pairKey, string]
	// (address, denom) => amount
	balances collections.Map[pairKey, sdkmath.Int]

	hooks struct {
		onNFTTransferred []NFTHook
	}
}

func (k *keeper) EscrowAddress() string {
	return k.escrow
}

func (k *keeper) AddOnNFTTransferredHook(hook NFTHook) Keeper {
	k.hooks.onNFTTransferred = append(k.hooks.onNFTTransferred, hook)
	return k
}

func (k *keeper) Mint(ctx context.Context, key mtypes.AssetKey, owner string) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return types.ErrInvalidAddress.Wrapf("owner: %s", err)
	}

	pk := collections.Join(key.Collection, key.TokenID)

	exists, err := k.nfts.Has(ctx, pk)
	if err != nil {
		return err
	}
	if exists {
		return types.ErrNFTExists.Wrapf("%s", key)
	}

	return k.nfts.Set(ctx, pk, owner)
}

func (k *keeper) OwnerOf(ctx context.Context, key mtypes.AssetKey) (string, error) {
	owner, err := k.nfts.Get(ctx, collections.Join(key.Collection, key.TokenID))
	if stderrors.Is(err, collections.ErrNotFound) {
		return "", types.ErrNFTNotFound.Wrapf("%s", key)
	}
	return owner, err
}

func (k *keeper) TransferNFT(ctx context.Context, key mtypes.AssetKey, from, to string) error {
	owner, err := k.OwnerOf(ctx, key)
	if err != nil {
		return err
	}
	if owner != from {
		return types.ErrNotOwner.Wrapf("%s is not the owner of %s", from, key)
	}
	if _, err := sdk.AccAddressFromBech32(to); err != nil {
		return types.ErrInvalidAddress.Wrapf("recipient: %s", err)
	}

	if err := k.nfts.Set(ctx, collections.Join(key.Collection, key.TokenID), to); err != nil {
		return err
	}

	nft := types.NFT{Collection: key.Collection, TokenID: key.TokenID, Owner: to}
	for _, hook := range k.hooks.onNFTTransferred {
		hook(ctx, nft)
	}

	return nil
}

func (k *keeper) Fund(ctx context.Context, addr, denom string, amount sdkmath.Int) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return types.ErrInvalidAddress.Wrapf("%s", err)
	}
	if denom == "" || amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("%s%s", amount, denom)
	}

	balance, err := k.Balance(ctx, addr, denom)
	if err != nil {
		return err
	}

	return k.balances.Set(ctx, collections.Join(addr, denom), balance.Add(amount))
}

func (k *keeper) Balance(ctx context.Context, addr, denom string) (sdkmath.Int, error) {
	balance, err := k.balances.Get(ctx, collections.Join(addr, denom))
	if stderrors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return balance, err
}

func (k *keeper) Send(ctx context.Context, from, to, denom string, amount sdkmath.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("%s%s", amount, denom)
	}
	if _, err := sdk.AccAddressFromBech32(to); err != nil {
		return types.ErrInvalidAddress.Wrapf("recipient: %s", err)
	}
	if amount.IsZero() {
		return nil
	}

	fromBalance, err := k.Balance(ctx, from, denom)
	if err != nil {
		return err
	}
	if fromBalance.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s has %s%s, needs %s%s", from, fromBalance, denom, amount, denom)
	}

	if err := k.setBalance(ctx, from, denom, fromBalance.Sub(amount)); err != nil {
		return err
	}

	toBalance, err := k.Balance(ctx, to, denom)
	if err != nil {
		return err
	}

	return k.setBalance(ctx, to, denom, toBalance.Add(amount))
}

func (k *keeper) Deposit(ctx context.Context, from string, funds ...mtypes.Asset) error {
	for _, fund := range funds {
		if err := k.Send(ctx, from, k.escrow, fund.Info.String(), fund.Value()); err != nil {
			return errors.Wrapf(err, "deposit %s", fund)
		}
	}
	return nil
}

func (k *keeper) DepositNFT(ctx context.Context, key mtypes.AssetKey, from string) error {
	if err := k.TransferNFT(ctx, key, from, k.escrow); err != nil {
		return errors.Wrapf(err, "deposit %s", key)
	}
	return nil
}

// Dispatch executes bank sends, cw20 transfer and cw721 transfer_nft messages.
func (k *keeper) Dispatch(ctx context.Context, from string, msg wasmvmtypes.CosmosMsg) error {
	switch {
	case msg.Bank != nil && msg.Bank.Send != nil:
		for _, coin := range msg.Bank.Send.Amount {
			amount, ok := sdkmath.NewIntFromString(coin.Amount)
			if !ok {
				return types.ErrInvalidAmount.Wrapf("%s%s", coin.Amount, coin.Denom)
			}
			if err := k.Send(ctx, from, msg.Bank.Send.ToAddress, coin.Denom, amount); err != nil {
				return err
			}
		}
		return nil
	case msg.Wasm != nil && msg.Wasm.Execute != nil:
		return k.dispatchExecute(ctx, from, msg.Wasm.Execute)
	}

	return types.ErrUnsupportedMsg.Wrapf("%+v", msg)
}

type executeMsg struct {
	TransferNft *mtypes.CW721TransferNft `json:"transfer_nft,omitempty"`
	Transfer    *mtypes.CW20Transfer     `json:"transfer,omitempty"`
}

func (k *keeper) dispatchExecute(ctx context.Context, from string, msg *wasmvmtypes.ExecuteMsg) error {
	var exec executeMsg
	if err := json.Unmarshal(msg.Msg, &exec); err != nil {
		return errors.Wrap(types.ErrUnsupportedMsg, err.Error())
	}

	switch {
	case exec.TransferNft != nil:
		key := mtypes.MakeAssetKey(msg.ContractAddr, exec.TransferNft.TokenID)
		return k.TransferNFT(ctx, key, from, exec.TransferNft.Recipient)
	case exec.Transfer != nil:
		amount, ok := sdkmath.NewIntFromString(exec.Transfer.Amount)
		if !ok {
			return types.ErrInvalidAmount.Wrapf("%s%s", exec.Transfer.Amount, msg.ContractAddr)
		}
		return k.Send(ctx, from, exec.Transfer.Recipient, msg.ContractAddr, amount)
	}

	return types.ErrUnsupportedMsg.Wrapf("contract %s: %s", msg.ContractAddr, msg.Msg)
}

func (k *keeper) setBalance(ctx context.Context, addr, denom string, amount sdkmath.Int) error {
	if amount.IsZero() {
		return k.balances.Remove(ctx, collections.Join(addr, denom))
	}
	return k.balances.Set(ctx, collections.Join(addr, denom), amount)
}

func (k *keeper) WithNFTs(ctx context.Context, fn func(types.NFT) bool) error {
	return k.nfts.Walk(ctx, nil, func(key pairKey, owner string) (bool, error) {
		return fn(types.NFT{Collection: key.K1(), TokenID: key.K2(), Owner: owner}), nil
	})
}

func (k *keeper) WithBalances(ctx context.Context, fn func(types.Balance) bool) error {
	return k.balances.Walk(ctx, nil, func(key pairKey, amount sdkmath.Int) (bool, error) {
		return fn(types.Balance{Address: key.K1(), Denom: key.K2(), Amount: amount}), nil
	})
}

func (k *keeper) SaveNFT(ctx context.Context, nft types.NFT) error {
	if err := nft.Validate(); err != nil {
		return err
	}
	return k.nfts.Set(ctx, collections.Join(nft.Collection, nft.TokenID), nft.Owner)
}

func (k *keeper) SaveBalance(ctx context.Context, balance types.Balance) error {
	if err := balance.Validate(); err != nil {
		return err
	}
	return k.setBalance(ctx, balance.Address, balance.Denom, balance.Amount)
}

func (k *keeper) Reset(ctx context.Context) error {
	if err := k.nfts.Clear(ctx, nil); err != nil {
		return err
	}
	return k.balances.Clear(ctx, nil)
}
