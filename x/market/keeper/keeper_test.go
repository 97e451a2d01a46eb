package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	"github.com/nftmx/node/testutil/state"
	"github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/types"
)

func Test_PutGetOrder(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	order := createOrder(t, ctx, keeper)

	result, err := keeper.Orders().Get(ctx, order.AssetKey)
	require.NoError(t, err)
	assertOrderEqual(t, order, result)

	has, err := keeper.Orders().Has(ctx, order.AssetKey)
	require.NoError(t, err)
	require.True(t, has)

	// assert non-existent order fails
	{
		_, err := keeper.Orders().Get(ctx, testutil.AssetKey(t))
		require.ErrorIs(t, err, types.ErrOrderNotFound)

		_, found, err := keeper.Orders().Find(ctx, testutil.AssetKey(t))
		require.NoError(t, err)
		require.False(t, found)
	}
}

func Test_PutReplacesOrder(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	order := createOrder(t, ctx, keeper)

	order.Price = testutil.NativeAsset(t, 777)
	require.NoError(t, keeper.Orders().Put(ctx, order.AssetKey, order))

	result, err := keeper.Orders().Get(ctx, order.AssetKey)
	require.NoError(t, err)
	require.Equal(t, "777", result.Price.Amount.String())

	count := 0
	require.NoError(t, keeper.WithOrders(ctx, func(types.Order) bool {
		count++
		return false
	}))
	require.Equal(t, 1, count)
}

func Test_RemoveBid(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	order := createOrder(t, ctx, keeper)
	bid := createBid(t, ctx, keeper, order)

	result, err := keeper.Bids().Get(ctx, bid.AssetKey)
	require.NoError(t, err)
	require.Equal(t, bid.Bidder, result.Bidder)
	require.Equal(t, order.Seller, result.Seller)

	require.NoError(t, keeper.Bids().Remove(ctx, bid.AssetKey))

	_, err = keeper.Bids().Get(ctx, bid.AssetKey)
	require.ErrorIs(t, err, types.ErrBidNotFound)

	// order is untouched
	has, err := keeper.Orders().Has(ctx, order.AssetKey)
	require.NoError(t, err)
	require.True(t, has)
}

func Test_WithOrders(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	order := createOrder(t, ctx, keeper)

	count := 0
	require.NoError(t, keeper.WithOrders(ctx, func(result types.Order) bool {
		if assert.Equal(t, order.AssetKey, result.AssetKey) {
			count++
		}
		return false
	}))

	assert.Equal(t, 1, count)
}

func Test_WalkCollection(t *testing.T) {
	ctx, keeper := setupKeeper(t)

	collection := testutil.Collection(t)
	for i := 0; i < 3; i++ {
		order := testOrder(t, testutil.AssetKeyForCollection(t, collection))
		require.NoError(t, keeper.Orders().Put(ctx, order.AssetKey, order))
	}

	// other collections
	createOrder(t, ctx, keeper)
	createOrder(t, ctx, keeper)

	count := 0
	require.NoError(t, keeper.Orders().WalkCollection(ctx, collection, func(key types.AssetKey, _ types.Order) bool {
		assert.Equal(t, collection, key.Collection)
		count++
		return false
	}))
	require.Equal(t, 3, count)

	orders, err := keeper.NewQuerier().Orders(ctx, collection)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	orders, err = keeper.NewQuerier().Orders(ctx, "")
	require.NoError(t, err)
	require.Len(t, orders, 5)
}

func Test_WalkStops(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	createOrder(t, ctx, keeper)
	createOrder(t, ctx, keeper)

	count := 0
	require.NoError(t, keeper.WithOrders(ctx, func(types.Order) bool {
		count++
		return true
	}))
	require.Equal(t, 1, count)
}

func Test_Params(t *testing.T) {
	ctx, keeper := setupKeeper(t)

	params, err := keeper.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)

	params.MinExpirationDelta = 5 * time.Minute
	params.AcceptedToken = testutil.Collection(t)
	require.NoError(t, keeper.SetParams(ctx, params))

	result, err := keeper.NewQuerier().Params(ctx)
	require.NoError(t, err)
	require.Equal(t, params, result)

	params.MinExpirationDelta = -time.Second
	require.Error(t, keeper.SetParams(ctx, params))
}

func Test_QueryVersion(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	require.Equal(t, types.EngineVersion, keeper.NewQuerier().Version(ctx).Version)
}

func Test_QueryOrderBid(t *testing.T) {
	ctx, keeper := setupKeeper(t)
	order := createOrder(t, ctx, keeper)
	querier := keeper.NewQuerier()

	result, err := querier.Order(ctx, order.AssetKey)
	require.NoError(t, err)
	assertOrderEqual(t, order, result)

	_, err = querier.Bid(ctx, order.AssetKey)
	require.ErrorIs(t, err, types.ErrBidNotFound)

	bid := createBid(t, ctx, keeper, order)
	rbid, err := querier.Bid(ctx, order.AssetKey)
	require.NoError(t, err)
	require.Equal(t, bid.Bidder, rbid.Bidder)
	require.True(t, bid.Price.Amount.Equal(rbid.Price.Amount))

	bids, err := querier.Bids(ctx, "")
	require.NoError(t, err)
	require.Len(t, bids, 1)

	_, err = querier.Order(ctx, types.AssetKey{})
	require.ErrorIs(t, err, types.ErrInvalidAssetKey)
}

func Test_EscrowAddress(t *testing.T) {
	_, keeper := setupKeeper(t)
	require.Equal(t, types.EscrowAddress(), keeper.EscrowAddress())
}

func assertOrderEqual(t testing.TB, expected, actual types.Order) {
	t.Helper()

	require.Equal(t, expected.AssetKey, actual.AssetKey)
	require.Equal(t, expected.Seller, actual.Seller)
	require.True(t, expected.Price.Info.Equal(actual.Price.Info))
	require.True(t, expected.Price.Amount.Equal(actual.Price.Amount))
	require.Equal(t, expected.Expiration.String(), actual.Expiration.String())
}

func testOrder(t testing.TB, key types.AssetKey) types.Order {
	t.Helper()

	return types.Order{
		AssetKey:   key,
		Seller:     testutil.AccAddress(t).String(),
		Price:      testutil.NativeAssetRandom(t),
		Expiration: types.NeverExpires(),
	}
}

func createOrder(t testing.TB, ctx sdk.Context, keeper keeper.IKeeper) types.Order {
	t.Helper()

	order := testOrder(t, testutil.AssetKey(t))
	require.NoError(t, keeper.Orders().Put(ctx, order.AssetKey, order))

	return order
}

func createBid(t testing.TB, ctx sdk.Context, keeper keeper.IKeeper, order types.Order) types.Bid {
	t.Helper()

	bid := types.Bid{
		AssetKey:   order.AssetKey,
		Bidder:     testutil.AccAddress(t).String(),
		Seller:     order.Seller,
		Price:      order.Price,
		Expiration: types.ExpiresAtHeight(100),
	}
	require.NoError(t, keeper.Bids().Put(ctx, bid.AssetKey, bid))

	return bid
}

func setupKeeper(t testing.TB) (sdk.Context, keeper.IKeeper) {
	t.Helper()

	suite := state.SetupTestSuite(t)

	return suite.Context(), suite.MarketKeeper()
}
