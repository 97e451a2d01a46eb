package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/nftmx/node/x/market/keeper/keys"
	"github.com/nftmx/node/x/market/types"
)

// Store is a table of records keyed by asset. At most one record exists per key;
// Put replaces the whole record.
type Store[T any] struct {
	m        collections.Map[keys.AssetPrimaryKey, T]
	notFound *errorsmod.Error
}

// OrderStore holds active orders
type OrderStore = Store[types.Order]

// BidStore holds active bids
type BidStore = Store[types.Bid]

func newStore[T any](m collections.Map[keys.AssetPrimaryKey, T], notFound *errorsmod.Error) Store[T] {
	return Store[T]{m: m, notFound: notFound}
}

// Get returns the record at key or the store's not found error.
func (s Store[T]) Get(ctx context.Context, key types.AssetKey) (T, error) {
	val, err := s.m.Get(ctx, keys.AssetKeyToKey(key))
	if errors.Is(err, collections.ErrNotFound) {
		return val, s.notFound.Wrapf("%s", key)
	}
	return val, err
}

// Find returns the record at key and whether it exists.
func (s Store[T]) Find(ctx context.Context, key types.AssetKey) (T, bool, error) {
	val, err := s.m.Get(ctx, keys.AssetKeyToKey(key))
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return val, false, nil
	case err != nil:
		return val, false, err
	}
	return val, true, nil
}

func (s Store[T]) Has(ctx context.Context, key types.AssetKey) (bool, error) {
	return s.m.Has(ctx, keys.AssetKeyToKey(key))
}

func (s Store[T]) Put(ctx context.Context, key types.AssetKey, val T) error {
	return s.m.Set(ctx, keys.AssetKeyToKey(key), val)
}

// Clear removes every record.
func (s Store[T]) Clear(ctx context.Context) error {
	return s.m.Clear(ctx, nil)
}

func (s Store[T]) Remove(ctx context.Context, key types.AssetKey) error {
	return s.m.Remove(ctx, keys.AssetKeyToKey(key))
}

// Walk iterates records in key order until fn returns true.
func (s Store[T]) Walk(ctx context.Context, fn func(types.AssetKey, T) bool) error {
	return s.m.Walk(ctx, nil, func(key keys.AssetPrimaryKey, val T) (bool, error) {
		return fn(keys.KeyToAssetKey(key), val), nil
	})
}

// WalkCollection iterates the records of a single collection until fn returns true.
func (s Store[T]) WalkCollection(ctx context.Context, collection string, fn func(types.AssetKey, T) bool) error {
	return s.m.Walk(ctx, keys.CollectionRange(collection), func(key keys.AssetPrimaryKey, val T) (bool, error) {
		return fn(keys.KeyToAssetKey(key), val), nil
	})
}
