package app

import (
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
)

const (
	FlagHome      = "home"
	FlagDBBackend = "db_backend"
)

// AppOptions is a read only view of the node configuration, e.g. *viper.Viper
type AppOptions interface {
	Get(string) interface{}
}

type setupAppOptions struct {
	home    string
	backend dbm.BackendType
	db      dbm.DB
	logger  log.Logger
	clock   func() time.Time
}

type SetupAppOption func(*setupAppOptions)

// WithHome sets home dir for app. State is persisted under <home>/data.
func WithHome(val string) SetupAppOption {
	return func(t *setupAppOptions) {
		t.home = val
	}
}

// WithDBBackend selects the cosmos-db backend used under <home>/data
func WithDBBackend(val dbm.BackendType) SetupAppOption {
	return func(t *setupAppOptions) {
		t.backend = val
	}
}

// WithAppOptions applies the home and db_backend settings found in appOpts
func WithAppOptions(appOpts AppOptions) SetupAppOption {
	return func(t *setupAppOptions) {
		if home := cast.ToString(appOpts.Get(FlagHome)); home != "" {
			t.home = home
		}
		if backend := cast.ToString(appOpts.Get(FlagDBBackend)); backend != "" {
			t.backend = dbm.BackendType(backend)
		}
	}
}

// WithDB sets the database backing the multistore
func WithDB(val dbm.DB) SetupAppOption {
	return func(t *setupAppOptions) {
		t.db = val
	}
}

func WithLogger(val log.Logger) SetupAppOption {
	return func(t *setupAppOptions) {
		t.logger = val
	}
}

// WithClock sets the source of block times
func WithClock(val func() time.Time) SetupAppOption {
	return func(t *setupAppOptions) {
		t.clock = val
	}
}
