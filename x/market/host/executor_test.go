package host

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tutil "github.com/nftmx/node/testutil"
	cmocks "github.com/nftmx/node/testutil/cosmos/mocks"
	"github.com/nftmx/node/testutil/state"
	etypes "github.com/nftmx/node/x/escrow/types"
	"github.com/nftmx/node/x/market/handler"
	"github.com/nftmx/node/x/market/types"
)

type executorSuite struct {
	ts     *state.TestSuite
	exec   *Executor
	seller string
	bidder string
	key    types.AssetKey
}

func setupExecutor(t *testing.T, dispatcher Dispatcher) *executorSuite {
	ts := state.SetupTestSuite(t)

	h := handler.NewHandler(handler.Keepers{
		Market:    ts.MarketKeeper(),
		Ownership: ts.EscrowKeeper(),
	})

	if dispatcher == nil {
		dispatcher = ts.EscrowKeeper()
	}

	s := &executorSuite{
		ts:     ts,
		exec:   NewExecutor(h, dispatcher, types.EscrowAddress()),
		seller: tutil.AccAddress(t).String(),
		bidder: tutil.AccAddress(t).String(),
		key:    tutil.AssetKey(t),
	}

	ctx := ts.Context()
	require.NoError(t, ts.EscrowKeeper().Mint(ctx, s.key, s.seller))
	require.NoError(t, ts.EscrowKeeper().Fund(ctx, s.bidder, tutil.CoinDenom, sdkmath.NewInt(1000)))

	return s
}

func (s *executorSuite) createOrder(t *testing.T) {
	t.Helper()

	_, err := s.exec.Execute(s.ts.Context(), &types.MsgCreateOrder{
		Sender:     s.seller,
		AssetKey:   s.key,
		Price:      tutil.NativeAsset(t, 100),
		Expiration: types.NeverExpires(),
	}, WithAfter(func(ctx sdk.Context) error {
		return s.ts.EscrowKeeper().DepositNFT(ctx, s.key, s.seller)
	}))
	require.NoError(t, err)
}

func (s *executorSuite) createBid(bidder string, price types.Asset) error {
	_, err := s.exec.Execute(s.ts.Context(), &types.MsgCreateBid{
		Sender:     bidder,
		AssetKey:   s.key,
		Price:      price,
		Expiration: types.NeverExpires(),
	}, WithAfter(func(ctx sdk.Context) error {
		return s.ts.EscrowKeeper().Deposit(ctx, bidder, price)
	}))
	return err
}

func (s *executorSuite) balance(t *testing.T, addr string) string {
	t.Helper()

	amount, err := s.ts.EscrowKeeper().Balance(s.ts.Context(), addr, tutil.CoinDenom)
	require.NoError(t, err)
	return amount.String()
}

func (s *executorSuite) owner(t *testing.T) string {
	t.Helper()

	owner, err := s.ts.EscrowKeeper().OwnerOf(s.ts.Context(), s.key)
	require.NoError(t, err)
	return owner
}

func TestExecutorSettlement(t *testing.T) {
	s := setupExecutor(t, nil)
	escrow := types.EscrowAddress().String()

	s.createOrder(t)
	require.Equal(t, escrow, s.owner(t))

	require.NoError(t, s.createBid(s.bidder, tutil.NativeAsset(t, 150)))
	require.Equal(t, "850", s.balance(t, s.bidder))
	require.Equal(t, "150", s.balance(t, escrow))

	resp, err := s.exec.Execute(s.ts.Context(), &types.MsgExecuteOrder{Sender: s.seller, AssetKey: s.key})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)

	require.Equal(t, "150", s.balance(t, s.seller))
	require.Equal(t, "0", s.balance(t, escrow))
	require.Equal(t, s.bidder, s.owner(t))
}

func TestExecutorSupersededBidRefunded(t *testing.T) {
	s := setupExecutor(t, nil)
	s.createOrder(t)

	second := tutil.AccAddress(t).String()
	require.NoError(t, s.ts.EscrowKeeper().Fund(s.ts.Context(), second, tutil.CoinDenom, sdkmath.NewInt(500)))

	require.NoError(t, s.createBid(s.bidder, tutil.NativeAsset(t, 150)))
	require.NoError(t, s.createBid(second, tutil.NativeAsset(t, 200)))

	require.Equal(t, "1000", s.balance(t, s.bidder))
	require.Equal(t, "300", s.balance(t, second))
	require.Equal(t, "200", s.balance(t, types.EscrowAddress().String()))
}

func TestExecutorCancelOrderReturnsAsset(t *testing.T) {
	s := setupExecutor(t, nil)
	s.createOrder(t)
	require.NoError(t, s.createBid(s.bidder, tutil.NativeAsset(t, 150)))

	resp, err := s.exec.Execute(s.ts.Context(), &types.MsgCancelOrder{Sender: s.seller, AssetKey: s.key})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)

	require.Equal(t, s.seller, s.owner(t))
	require.Equal(t, "1000", s.balance(t, s.bidder))
}

func TestExecutorRejectedLeavesNoTrace(t *testing.T) {
	s := setupExecutor(t, nil)
	s.createOrder(t)

	before := testutil.ToFloat64(operationCounter.WithLabelValues(types.ActionCreateBid, "fail"))

	// below the order price
	err := s.createBid(s.bidder, tutil.NativeAsset(t, 50))
	require.ErrorIs(t, err, types.ErrMinPrice)

	// an unfunded bidder gets the engine's answer, not the ledger's
	err = s.createBid(tutil.AccAddress(t).String(), tutil.NativeAsset(t, 50))
	require.ErrorIs(t, err, types.ErrMinPrice)
	require.Equal(t, "1000", s.balance(t, s.bidder))

	_, found, err := s.ts.MarketKeeper().Bids().Find(s.ts.Context(), s.key)
	require.NoError(t, err)
	require.False(t, found)

	after := testutil.ToFloat64(operationCounter.WithLabelValues(types.ActionCreateBid, "fail"))
	require.Equal(t, before+2, after)
}

func TestExecutorStepFailure(t *testing.T) {
	s := setupExecutor(t, nil)
	s.createOrder(t)

	err := s.createBid(s.bidder, tutil.NativeAsset(t, 5000))
	require.ErrorIs(t, err, etypes.ErrInsufficientFunds)

	_, found, err := s.ts.MarketKeeper().Bids().Find(s.ts.Context(), s.key)
	require.NoError(t, err)
	require.False(t, found)
}

func TestExecutorEffectFailureRollsBack(t *testing.T) {
	dispatcher := cmocks.NewDispatcher(t)
	s := setupExecutor(t, dispatcher)

	s.createOrder(t)
	require.NoError(t, s.createBid(s.bidder, tutil.NativeAsset(t, 150)))

	failure := errors.New("contract failed")
	dispatcher.On("Dispatch", mock.Anything, types.EscrowAddress().String(), mock.Anything).Return(nil).Once()
	dispatcher.On("Dispatch", mock.Anything, types.EscrowAddress().String(), mock.Anything).Return(failure).Once()

	events := len(s.ts.Context().EventManager().Events())

	_, err := s.exec.Execute(s.ts.Context(), &types.MsgExecuteOrder{Sender: s.seller, AssetKey: s.key})
	require.ErrorIs(t, err, failure)

	ctx := s.ts.Context()
	found, err := s.ts.MarketKeeper().Orders().Has(ctx, s.key)
	require.NoError(t, err)
	require.True(t, found)

	_, found, err = s.ts.MarketKeeper().Bids().Find(ctx, s.key)
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, ctx.EventManager().Events(), events)
}

func TestExecutorEmitsEventsOnCommit(t *testing.T) {
	s := setupExecutor(t, nil)
	events := len(s.ts.Context().EventManager().Events())

	s.createOrder(t)

	all := s.ts.Context().EventManager().Events()
	require.Greater(t, len(all), events)
	require.Equal(t, types.EventType, all[len(all)-1].Type)
}
