package types

import (
	"fmt"
	"time"
)

const (
	// DefaultMinExpirationDelta is the shortest time based listing lifetime accepted
	DefaultMinExpirationDelta = 60 * time.Second
)

// Params defines the parameters for the nftmarket module
type Params struct {
	MinExpirationDelta time.Duration `json:"min_expiration_delta" yaml:"min_expiration_delta"`
	// AcceptedToken restricts cw20 denominated prices to one contract when set.
	AcceptedToken string `json:"accepted_token,omitempty" yaml:"accepted_token,omitempty"`
}

// DefaultParams returns the default parameters for the module
func DefaultParams() Params {
	return Params{
		MinExpirationDelta: DefaultMinExpirationDelta,
	}
}

// Validate checks the parameters are consistent
func (p Params) Validate() error {
	if p.MinExpirationDelta < 0 {
		return fmt.Errorf("min expiration delta must not be negative: %s", p.MinExpirationDelta)
	}
	if p.AcceptedToken != "" {
		if err := NewTokenAssetInfo(p.AcceptedToken).Validate(); err != nil {
			return fmt.Errorf("accepted token: %w", err)
		}
	}
	return nil
}

// ValidatePrice rejects token prices outside the accepted token, if one is configured.
func (p Params) ValidatePrice(price Asset) error {
	if p.AcceptedToken == "" || price.Info.Token == nil {
		return nil
	}
	if price.Info.Token.ContractAddr != p.AcceptedToken {
		return ErrInvalidDenomination.Wrapf("token %s is not accepted", price.Info.Token.ContractAddr)
	}
	return nil
}
