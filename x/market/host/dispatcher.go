package host

import (
	"context"

	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v3/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedEffect = errors.New("unsupported effect")
	ErrInvalidSender     = errors.New("effect sender is not the escrow account")
)

// Dispatcher executes a single effect on behalf of from
type Dispatcher interface {
	Dispatch(ctx context.Context, from string, msg wasmvmtypes.CosmosMsg) error
}

type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// ContractKeeper is the contract execution surface of the wasm module
type ContractKeeper interface {
	Execute(ctx context.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}

var _ ContractKeeper = (wasmtypes.ContractOpsKeeper)(nil)

// ChainDispatcher executes effects against the bank and wasm modules of a chain,
// paying out of the module account that holds the escrow.
type ChainDispatcher struct {
	bank      BankKeeper
	contracts ContractKeeper
	module    string
	escrow    sdk.AccAddress
}

// NewChainDispatcher is the chain-side counterpart of the escrow ledger's Dispatch,
// for hosts embedding the engine in a wasmd chain.
func NewChainDispatcher(bank BankKeeper, contracts ContractKeeper, module string, escrow sdk.AccAddress) ChainDispatcher {
	return ChainDispatcher{
		bank:      bank,
		contracts: contracts,
		module:    module,
		escrow:    escrow,
	}
}

var _ Dispatcher = ChainDispatcher{}

func (d ChainDispatcher) Dispatch(ctx context.Context, from string, msg wasmvmtypes.CosmosMsg) error {
	if from != d.escrow.String() {
		return errors.Wrapf(ErrInvalidSender, "%s", from)
	}

	switch {
	case msg.Bank != nil && msg.Bank.Send != nil:
		to, err := sdk.AccAddressFromBech32(msg.Bank.Send.ToAddress)
		if err != nil {
			return errors.Wrap(err, "bank send recipient")
		}

		coins, err := toCoins(msg.Bank.Send.Amount)
		if err != nil {
			return err
		}

		return d.bank.SendCoinsFromModuleToAccount(ctx, d.module, to, coins)
	case msg.Wasm != nil && msg.Wasm.Execute != nil:
		contract, err := sdk.AccAddressFromBech32(msg.Wasm.Execute.ContractAddr)
		if err != nil {
			return errors.Wrap(err, "contract address")
		}

		funds, err := toCoins(msg.Wasm.Execute.Funds)
		if err != nil {
			return err
		}

		_, err = d.contracts.Execute(ctx, contract, d.escrow, msg.Wasm.Execute.Msg, funds)
		return err
	}

	return errors.Wrapf(ErrUnsupportedEffect, "%s", EffectKind(msg))
}

// EffectKind names the effect for logs and metrics
func EffectKind(msg wasmvmtypes.CosmosMsg) string {
	switch {
	case msg.Bank != nil:
		return "bank"
	case msg.Wasm != nil:
		return "wasm"
	}
	return "unknown"
}

func toCoins(coins []wasmvmtypes.Coin) (sdk.Coins, error) {
	res := sdk.Coins{}
	for _, coin := range coins {
		amount, ok := sdkmath.NewIntFromString(coin.Amount)
		if !ok || amount.IsNegative() {
			return nil, errors.Errorf("invalid amount %q for %s", coin.Amount, coin.Denom)
		}
		if amount.IsZero() {
			continue
		}
		res = append(res, sdk.Coin{Denom: coin.Denom, Amount: amount})
	}

	res = res.Sort()
	if err := res.Validate(); err != nil {
		return nil, errors.Wrap(err, "effect funds")
	}

	return res, nil
}
