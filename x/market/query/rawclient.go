package query

import (
	"fmt"

	"github.com/nftmx/node/x/market/types"
)

// Node runs a path query against the latest committed state
type Node interface {
	Query(path string) ([]byte, error)
}

// RawClient interface
type RawClient interface {
	Version() ([]byte, error)
	Order(types.AssetKey) ([]byte, error)
	Bid(types.AssetKey) ([]byte, error)
	Orders(Filters) ([]byte, error)
	Bids(Filters) ([]byte, error)
	Params() ([]byte, error)
}

// NewRawClient creates a client instance with provided node and key
func NewRawClient(node Node, key string) RawClient {
	return &rawclient{node: node, key: key}
}

type rawclient struct {
	node Node
	key  string
}

func (c *rawclient) query(path string) ([]byte, error) {
	return c.node.Query(fmt.Sprintf("custom/%s/%s", c.key, path))
}

func (c *rawclient) Version() ([]byte, error) {
	return c.query(getVersionPath())
}

func (c *rawclient) Order(key types.AssetKey) ([]byte, error) {
	return c.query(getOrderPath(key))
}

func (c *rawclient) Bid(key types.AssetKey) ([]byte, error) {
	return c.query(getBidPath(key))
}

func (c *rawclient) Orders(filters Filters) ([]byte, error) {
	return c.query(getOrdersPath(filters))
}

func (c *rawclient) Bids(filters Filters) ([]byte, error) {
	return c.query(getBidsPath(filters))
}

func (c *rawclient) Params() ([]byte, error) {
	return c.query(getParamsPath())
}
