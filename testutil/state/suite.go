package state

import (
	"testing"
	"time"

	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	ekeeper "github.com/nftmx/node/x/escrow/keeper"
	etypes "github.com/nftmx/node/x/escrow/types"
	mkeeper "github.com/nftmx/node/x/market/keeper"
	mtypes "github.com/nftmx/node/x/market/types"
)

// TestSuite encapsulates the market and escrow data stores for
// ephemeral testing.
type TestSuite struct {
	t       testing.TB
	ms      store.CommitMultiStore
	ctx     sdk.Context
	keepers Keepers
}

type Keepers struct {
	Market mkeeper.IKeeper
	Escrow ekeeper.Keeper
}

// SetupTestSuite provides toolkit for accessing stores and keepers
// for complex data interactions.
func SetupTestSuite(t testing.TB) *TestSuite {
	t.Helper()

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, testutil.Logger(t), metrics.NewNoOpMetrics())

	mkey := storetypes.NewKVStoreKey(mtypes.StoreKey)
	ekey := storetypes.NewKVStoreKey(etypes.StoreKey)

	ms.MountStoreWithDB(mkey, storetypes.StoreTypeIAVL, db)
	ms.MountStoreWithDB(ekey, storetypes.StoreTypeIAVL, db)

	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, cmtproto.Header{
		Height: 1,
		Time:   time.Now().UTC(),
	}, false, testutil.Logger(t))

	return &TestSuite{
		t:   t,
		ms:  ms,
		ctx: ctx,
		keepers: Keepers{
			Market: mkeeper.NewKeeper(runtime.NewKVStoreService(mkey)),
			Escrow: ekeeper.NewKeeper(runtime.NewKVStoreService(ekey), mtypes.EscrowAddress()),
		},
	}
}

func (ts *TestSuite) Context() sdk.Context {
	return ts.ctx
}

// SetBlockTime moves the suite context to the given time
func (ts *TestSuite) SetBlockTime(tm time.Time) {
	ts.ctx = ts.ctx.WithBlockTime(tm)
}

func (ts *TestSuite) Store() store.CommitMultiStore {
	return ts.ms
}

func (ts *TestSuite) MarketKeeper() mkeeper.IKeeper {
	return ts.keepers.Market
}

func (ts *TestSuite) EscrowKeeper() ekeeper.Keeper {
	return ts.keepers.Escrow
}
