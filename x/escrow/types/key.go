package types

const (
	// ModuleName is the name of the escrow ledger
	ModuleName = "escrow"

	// StoreKey is the store key string for the escrow ledger
	StoreKey = ModuleName
)

var (
	NFTPrefix     = []byte{0x01}
	BalancePrefix = []byte{0x02}
)
