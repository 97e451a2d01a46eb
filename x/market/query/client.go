package query

import (
	"encoding/json"

	"github.com/nftmx/node/x/market/keeper"
	"github.com/nftmx/node/x/market/types"
)

// Client interface
type Client interface {
	Version() (keeper.VersionResponse, error)
	Order(types.AssetKey) (types.Order, error)
	Bid(types.AssetKey) (types.Bid, error)
	Orders(Filters) (types.Orders, error)
	Bids(Filters) (types.Bids, error)
	Params() (types.Params, error)
}

// NewClient creates a client instance with provided node and key
func NewClient(node Node, key string) Client {
	return &client{raw: NewRawClient(node, key)}
}

type client struct {
	raw RawClient
}

func decode[T any](buf []byte, err error) (T, error) {
	var obj T
	if err != nil {
		return obj, err
	}
	return obj, json.Unmarshal(buf, &obj)
}

func (c *client) Version() (keeper.VersionResponse, error) {
	return decode[keeper.VersionResponse](c.raw.Version())
}

func (c *client) Order(key types.AssetKey) (types.Order, error) {
	return decode[types.Order](c.raw.Order(key))
}

func (c *client) Bid(key types.AssetKey) (types.Bid, error) {
	return decode[types.Bid](c.raw.Bid(key))
}

func (c *client) Orders(filters Filters) (types.Orders, error) {
	return decode[types.Orders](c.raw.Orders(filters))
}

func (c *client) Bids(filters Filters) (types.Bids, error) {
	return decode[types.Bids](c.raw.Bids(filters))
}

func (c *client) Params() (types.Params, error) {
	return decode[types.Params](c.raw.Params())
}
