package cli

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

const (
	FlagFrom         = "from"
	FlagCollection   = "collection"
	FlagTokenID      = "token-id"
	FlagPrice        = "price"
	FlagDenom        = "denom"
	FlagCW20         = "cw20"
	FlagExpireHeight = "expire-height"
	FlagExpireTime   = "expire-time"
	FlagNever        = "never"
)

// AddFromFlag adds the sender flag
func AddFromFlag(flags *pflag.FlagSet) {
	flags.String(FlagFrom, "", "Sender address")
}

// MarkReqFromFlag marks the sender flag required
func MarkReqFromFlag(cmd *cobra.Command) {
	_ = cmd.MarkFlagRequired(FlagFrom)
}

// FromFromFlags returns the sender address
func FromFromFlags(flags *pflag.FlagSet) (string, error) {
	from, err := flags.GetString(FlagFrom)
	if err != nil {
		return "", err
	}
	if _, err := sdk.AccAddressFromBech32(from); err != nil {
		return "", types.ErrInvalidAddress.Wrapf("--%s: %s", FlagFrom, err)
	}
	return from, nil
}

// AddAssetKeyFlags add flags for asset key
func AddAssetKeyFlags(flags *pflag.FlagSet) {
	flags.String(FlagCollection, "", "cw721 collection contract address")
	flags.String(FlagTokenID, "", "Token id within the collection")
}

// MarkReqAssetKeyFlags marks flags required for asset key
func MarkReqAssetKeyFlags(cmd *cobra.Command) {
	_ = cmd.MarkFlagRequired(FlagCollection)
	_ = cmd.MarkFlagRequired(FlagTokenID)
}

// AssetKeyFromFlags returns AssetKey with given flags and error if occurred
func AssetKeyFromFlags(flags *pflag.FlagSet) (types.AssetKey, error) {
	collection, err := flags.GetString(FlagCollection)
	if err != nil {
		return types.AssetKey{}, err
	}
	tokenID, err := flags.GetString(FlagTokenID)
	if err != nil {
		return types.AssetKey{}, err
	}

	key := types.MakeAssetKey(collection, tokenID)
	if err := key.Validate(); err != nil {
		return types.AssetKey{}, err
	}

	return key, nil
}

// AddPriceFlags add flags for an asset value
func AddPriceFlags(flags *pflag.FlagSet) {
	flags.String(FlagPrice, "", "Amount in base units")
	flags.String(FlagDenom, "", "Native denomination of the price")
	flags.String(FlagCW20, "", "cw20 token contract address of the price")
}

// MarkReqPriceFlags marks flags required for price
func MarkReqPriceFlags(cmd *cobra.Command) {
	_ = cmd.MarkFlagRequired(FlagPrice)
	cmd.MarkFlagsOneRequired(FlagDenom, FlagCW20)
	cmd.MarkFlagsMutuallyExclusive(FlagDenom, FlagCW20)
}

// PriceFromFlags returns the asset value with given flags and error if occurred
func PriceFromFlags(flags *pflag.FlagSet) (types.Asset, error) {
	val, err := flags.GetString(FlagPrice)
	if err != nil {
		return types.Asset{}, err
	}

	amount, ok := sdkmath.NewIntFromString(val)
	if !ok {
		return types.Asset{}, types.ErrInvalidPrice.Wrapf("--%s: %q is not an integer", FlagPrice, val)
	}

	denom, err := flags.GetString(FlagDenom)
	if err != nil {
		return types.Asset{}, err
	}
	contract, err := flags.GetString(FlagCW20)
	if err != nil {
		return types.Asset{}, err
	}

	var price types.Asset
	switch {
	case denom != "" && contract != "":
		return types.Asset{}, fmt.Errorf("--%s and --%s are mutually exclusive", FlagDenom, FlagCW20) // nolint: goerr113
	case denom != "":
		price = types.NewNativeAsset(denom, amount)
	case contract != "":
		price = types.NewTokenAsset(contract, amount)
	default:
		return types.Asset{}, fmt.Errorf("one of --%s or --%s is required", FlagDenom, FlagCW20) // nolint: goerr113
	}

	return price, price.Validate()
}

// AddExpirationFlags add flags for expiration. Without any of them the record never expires.
func AddExpirationFlags(flags *pflag.FlagSet) {
	flags.Uint64(FlagExpireHeight, 0, "Expire at block height")
	flags.String(FlagExpireTime, "", "Expire at time (RFC3339)")
	flags.Bool(FlagNever, false, "Never expire")
}

// ExpirationFromFlags returns Expiration with given flags and error if occurred
func ExpirationFromFlags(flags *pflag.FlagSet) (types.Expiration, error) {
	var set []string
	for _, name := range []string{FlagExpireHeight, FlagExpireTime, FlagNever} {
		if flags.Changed(name) {
			set = append(set, "--"+name)
		}
	}

	if len(set) > 1 {
		return types.Expiration{}, fmt.Errorf("flags %v are mutually exclusive", set) // nolint: goerr113
	}

	switch {
	case flags.Changed(FlagExpireHeight):
		height, err := flags.GetUint64(FlagExpireHeight)
		if err != nil {
			return types.Expiration{}, err
		}
		return types.ExpiresAtHeight(height), nil
	case flags.Changed(FlagExpireTime):
		val, err := flags.GetString(FlagExpireTime)
		if err != nil {
			return types.Expiration{}, err
		}
		tm, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return types.Expiration{}, types.ErrInvalidExpiration.Wrapf("--%s: %s", FlagExpireTime, err)
		}
		return types.NewTimeExpiration(tm)
	}

	return types.NeverExpires(), nil
}

// AddFilterFlags add flags to filter for order and bid lists
func AddFilterFlags(flags *pflag.FlagSet) {
	flags.String(FlagCollection, "", "collection address to filter")
}

// FiltersFromFlags returns Filters with given flags and error if occurred
func FiltersFromFlags(flags *pflag.FlagSet) (query.Filters, error) {
	collection, err := flags.GetString(FlagCollection)
	if err != nil {
		return query.Filters{}, err
	}

	if collection != "" {
		if _, err := sdk.AccAddressFromBech32(collection); err != nil {
			return query.Filters{}, types.ErrInvalidAssetKey.Wrapf("--%s: %s", FlagCollection, err)
		}
	}

	return query.Filters{Collection: collection}, nil
}
