package types

// GenesisState stores the module state exported or imported at chain boundaries
type GenesisState struct {
	Params Params `json:"params"`
	Orders Orders `json:"orders"`
	Bids   Bids   `json:"bids"`
}

// DefaultGenesisState returns default genesis state as raw bytes for the nftmarket module.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate checks every record and the one order / one bid per asset invariants.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidGenesis.Wrap(err.Error())
	}

	orders := make(map[AssetKey]Order, len(gs.Orders))
	for _, order := range gs.Orders {
		if err := order.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("order %s: %s", order.AssetKey, err)
		}
		if _, exists := orders[order.AssetKey]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate order %s", order.AssetKey)
		}
		orders[order.AssetKey] = order
	}

	bids := make(map[AssetKey]struct{}, len(gs.Bids))
	for _, bid := range gs.Bids {
		if err := bid.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("bid %s: %s", bid.AssetKey, err)
		}
		if _, exists := bids[bid.AssetKey]; exists {
			return ErrInvalidGenesis.Wrapf("duplicate bid %s", bid.AssetKey)
		}
		order, exists := orders[bid.AssetKey]
		if !exists {
			return ErrInvalidGenesis.Wrapf("bid %s has no order", bid.AssetKey)
		}
		if order.Seller != bid.Seller {
			return ErrInvalidGenesis.Wrapf("bid %s seller does not match order", bid.AssetKey)
		}
		bids[bid.AssetKey] = struct{}{}
	}

	return nil
}
