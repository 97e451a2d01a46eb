package host

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nftmx/node/util/metrics"
	"github.com/nftmx/node/x/market/handler"
	"github.com/nftmx/node/x/market/types"
)

// Step runs inside the operation's cache context
type Step func(ctx sdk.Context) error

type execOptions struct {
	after []Step
}

type ExecOption func(*execOptions)

// WithAfter runs step after the operation succeeded and before its effects,
// e.g. to take a deposit into escrow. Rejections by the engine therefore win
// over step failures.
func WithAfter(step Step) ExecOption {
	return func(opts *execOptions) {
		opts.after = append(opts.after, step)
	}
}

// Executor runs an operation and all of its effects as one unit. State written
// by the operation, the steps and the effects is committed together or not at all.
type Executor struct {
	handler    handler.Handler
	dispatcher Dispatcher
	escrow     string
}

func NewExecutor(h handler.Handler, dispatcher Dispatcher, escrow sdk.AccAddress) *Executor {
	return &Executor{
		handler:    h,
		dispatcher: dispatcher,
		escrow:     escrow.String(),
	}
}

func (e *Executor) Execute(ctx sdk.Context, msg types.Msg, opts ...ExecOption) (*types.Response, error) {
	resp, err := metrics.ObserveDuration(func() (*types.Response, error) {
		return e.execute(ctx, msg, opts...)
	}, operationDuration)()

	metrics.IncCounterVecWithLabelValues(operationCounter, msg.Type(), err)

	if err != nil {
		ctx.Logger().Debug("operation rejected", "module", "x/"+types.ModuleName, "action", msg.Type(), "err", err)
	}

	return resp, err
}

func (e *Executor) execute(ctx sdk.Context, msg types.Msg, opts ...ExecOption) (*types.Response, error) {
	eopts := &execOptions{}
	for _, opt := range opts {
		opt(eopts)
	}

	cctx, writeCache := ctx.CacheContext()

	resp, err := e.handler(cctx, msg)
	if err != nil {
		return nil, err
	}

	for _, step := range eopts.after {
		if err := step(cctx); err != nil {
			return nil, err
		}
	}

	for idx, effect := range resp.Messages {
		err := e.dispatcher.Dispatch(cctx, e.escrow, effect)
		metrics.IncCounterVecWithLabelValues(effectCounter, EffectKind(effect), err)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "%s effect %d (%s)", msg.Type(), idx, EffectKind(effect))
		}
	}

	writeCache()

	return resp, nil
}
