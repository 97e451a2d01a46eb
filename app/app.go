package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/nftmx/node/pubsub"
	ekeeper "github.com/nftmx/node/x/escrow/keeper"
	etypes "github.com/nftmx/node/x/escrow/types"
	"github.com/nftmx/node/x/market/handler"
	"github.com/nftmx/node/x/market/host"
	mkeeper "github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/query"
	mtypes "github.com/nftmx/node/x/market/types"
)

const (
	AppName = "nftmarket"

	dataDir = "data"
)

// DefaultHome is the default home directory for the node
var DefaultHome = os.ExpandEnv("$HOME/.nftmarket")

// AppKeepers holds the module keepers
type AppKeepers struct {
	Market mkeeper.IKeeper
	Escrow ekeeper.Keeper
}

// App is a single process execution host for the marketplace. Every delivered
// command runs in its own block and is committed before the next one starts.
type App struct {
	mtx sync.Mutex

	db     dbm.DB
	cms    store.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey
	logger log.Logger
	clock  func() time.Time

	Keepers AppKeepers

	executor *host.Executor
	querier  query.Querier

	// committed transaction results are published here
	bus pubsub.Bus
}

// NewApp opens the state database and wires the modules
func NewApp(opts ...SetupAppOption) (*App, error) {
	cfg := &setupAppOptions{
		backend: dbm.GoLevelDBBackend,
		logger:  log.NewNopLogger(),
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	db := cfg.db
	if db == nil {
		var err error
		if db, err = openDB(cfg.home, cfg.backend); err != nil {
			return nil, err
		}
	}

	logger := cfg.logger.With("module", AppName)

	app := &App{
		db:     db,
		logger: logger,
		clock:  cfg.clock,
		keys:   storetypes.NewKVStoreKeys(mtypes.StoreKey, etypes.StoreKey),
	}

	app.cms = store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range app.keys {
		app.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}

	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load state")
	}

	app.Keepers.Market = mkeeper.NewKeeper(runtime.NewKVStoreService(app.keys[mtypes.StoreKey]))
	app.Keepers.Escrow = ekeeper.NewKeeper(runtime.NewKVStoreService(app.keys[etypes.StoreKey]), mtypes.EscrowAddress())

	app.Keepers.Escrow.AddOnNFTTransferredHook(func(ctx context.Context, nft etypes.NFT) {
		sdk.UnwrapSDKContext(ctx).Logger().Debug("nft transferred",
			"collection", nft.Collection, "token_id", nft.TokenID, "owner", nft.Owner)
	})

	app.executor = host.NewExecutor(
		handler.NewHandler(handler.Keepers{
			Market:    app.Keepers.Market,
			Ownership: app.Keepers.Escrow,
		}),
		app.Keepers.Escrow,
		mtypes.EscrowAddress(),
	)

	app.querier = query.NewQuerier(app.Keepers.Market)
	app.bus = pubsub.NewBus()

	return app, nil
}

func openDB(home string, backend dbm.BackendType) (dbm.DB, error) {
	if home == "" {
		return dbm.NewMemDB(), nil
	}

	dir := filepath.Join(home, dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return dbm.NewDB("application", backend, dir)
}

// Close releases the state database
func (app *App) Close() error {
	app.bus.Close()

	app.mtx.Lock()
	defer app.mtx.Unlock()

	return app.db.Close()
}

// LastBlockHeight returns the height of the last committed block
func (app *App) LastBlockHeight() int64 {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	return app.cms.LastCommitID().Version
}

// Deliver runs one command in a new block. The asset of a new listing and the
// funds of a bid are moved into escrow as part of the same unit.
func (app *App) Deliver(msg mtypes.Msg) (*mtypes.TxResult, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	var opts []host.ExecOption

	switch msg := msg.(type) {
	case *mtypes.MsgCreateOrder:
		opts = append(opts, host.WithAfter(func(ctx sdk.Context) error {
			return app.Keepers.Escrow.DepositNFT(ctx, msg.AssetKey, msg.Sender)
		}))
	case *mtypes.MsgCreateBid:
		opts = append(opts, host.WithAfter(func(ctx sdk.Context) error {
			return app.Keepers.Escrow.Deposit(ctx, msg.Sender, msg.Price)
		}))
	}

	ctx := app.blockContext()

	resp, err := app.executor.Execute(ctx, msg, opts...)
	if err != nil {
		return nil, err
	}

	res := &mtypes.TxResult{
		Height:   app.commit(ctx),
		Response: resp,
	}

	if err := app.bus.Publish(res); err != nil {
		app.logger.Error("publishing tx result", "height", res.Height, "err", err)
	}

	return res, nil
}

// Subscribe streams the result of every command delivered from now on
func (app *App) Subscribe() (pubsub.Subscriber, error) {
	return app.bus.Subscribe()
}

// Update runs fn in a new block and commits its writes if it succeeds
func (app *App) Update(fn func(sdk.Context) error) (int64, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	ctx := app.blockContext()

	cctx, writeCache := ctx.CacheContext()
	if err := fn(cctx); err != nil {
		return 0, err
	}
	writeCache()

	return app.commit(ctx), nil
}

// View runs fn against the last committed state. Writes are discarded.
func (app *App) View(fn func(sdk.Context) error) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	return fn(app.queryContext())
}

// Query answers custom/<module>/<path> queries against the last committed state
func (app *App) Query(path string) ([]byte, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "custom" {
		return nil, mtypes.ErrUnknownRequest.Wrapf("unknown query path %q", path)
	}

	if parts[1] != mtypes.ModuleName {
		return nil, mtypes.ErrUnknownRequest.Wrapf("unknown module %q", parts[1])
	}

	app.mtx.Lock()
	defer app.mtx.Unlock()

	return app.querier(app.queryContext(), parts[2:])
}

func (app *App) blockContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: AppName,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    app.clock().UTC(),
	}

	return sdk.NewContext(app.cms, header, false, app.logger)
}

func (app *App) queryContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: AppName,
		Height:  app.cms.LastCommitID().Version,
		Time:    app.clock().UTC(),
	}

	return sdk.NewContext(app.cms.CacheMultiStore(), header, false, app.logger)
}

func (app *App) commit(ctx sdk.Context) int64 {
	cid := app.cms.Commit()

	app.logger.Debug("committed block", "height", cid.Version, "events", len(ctx.EventManager().Events()))

	return cid.Version
}
