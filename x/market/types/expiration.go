package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type ExpirationKind uint8

const (
	ExpirationNever ExpirationKind = iota
	ExpirationAtHeight
	ExpirationAtTime
)

var (
	// time based expirations are stored as unix nanoseconds
	minExpirationTime = time.Unix(0, math.MinInt64).UTC()
	maxExpirationTime = time.Unix(0, math.MaxInt64).UTC()
)

// Expiration bounds the lifetime of an order or bid. The zero value never expires.
type Expiration struct {
	Kind   ExpirationKind
	Height uint64
	Time   time.Time
}

func NeverExpires() Expiration {
	return Expiration{Kind: ExpirationNever}
}

func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{Kind: ExpirationAtHeight, Height: height}
}

// ExpiresAtTime expects t within the unix nanosecond range; see NewTimeExpiration.
func ExpiresAtTime(t time.Time) Expiration {
	return Expiration{Kind: ExpirationAtTime, Time: time.Unix(0, t.UnixNano()).UTC()}
}

// NewTimeExpiration is ExpiresAtTime for untrusted input. Times that do not fit
// unix nanoseconds (before 1678 or after 2262) are rejected.
func NewTimeExpiration(t time.Time) (Expiration, error) {
	if t.Before(minExpirationTime) || t.After(maxExpirationTime) {
		return Expiration{}, ErrInvalidExpiration.Wrapf("%s is outside %s .. %s", t.Format(time.RFC3339),
			minExpirationTime.Format(time.RFC3339), maxExpirationTime.Format(time.RFC3339))
	}
	return ExpiresAtTime(t), nil
}

// IsTimeExpired reports whether a time based expiration has elapsed at now.
// Height based and never expiring values are not considered.
func (e Expiration) IsTimeExpired(now time.Time) bool {
	return e.Kind == ExpirationAtTime && e.Time.Unix() < now.Unix()
}

// ValidateListing checks that a time based expiration leaves at least delta before it elapses.
func (e Expiration) ValidateListing(now time.Time, delta time.Duration) error {
	if e.Kind != ExpirationAtTime {
		return nil
	}

	if e.Time.Unix() < now.Unix()+int64(delta/time.Second) {
		return ErrInvalidExpiration.Wrapf("expiration %s is less than %s after %s",
			e.Time.Format(time.RFC3339), delta, now.UTC().Format(time.RFC3339))
	}

	return nil
}

func (e Expiration) String() string {
	switch e.Kind {
	case ExpirationAtHeight:
		return fmt.Sprintf("height:%d", e.Height)
	case ExpirationAtTime:
		return "time:" + e.Time.Format(time.RFC3339)
	default:
		return "never"
	}
}

type expirationJSON struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}

// MarshalJSON encodes the cw0 form; at_time is a string of unix nanoseconds.
func (e Expiration) MarshalJSON() ([]byte, error) {
	var obj expirationJSON

	switch e.Kind {
	case ExpirationAtHeight:
		h := e.Height
		obj.AtHeight = &h
	case ExpirationAtTime:
		t := strconv.FormatInt(e.Time.UnixNano(), 10)
		obj.AtTime = &t
	case ExpirationNever:
		obj.Never = &struct{}{}
	default:
		return nil, fmt.Errorf("unknown expiration kind %d", e.Kind)
	}

	return json.Marshal(obj)
}

func (e *Expiration) UnmarshalJSON(bz []byte) error {
	var obj expirationJSON
	if err := json.Unmarshal(bz, &obj); err != nil {
		return err
	}

	set := 0
	for _, ok := range []bool{obj.AtHeight != nil, obj.AtTime != nil, obj.Never != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return ErrInvalidExpiration.Wrapf("expected exactly one of at_height, at_time, never in %s", bz)
	}

	switch {
	case obj.AtHeight != nil:
		*e = ExpiresAtHeight(*obj.AtHeight)
	case obj.AtTime != nil:
		nanos, err := strconv.ParseInt(*obj.AtTime, 10, 64)
		if err != nil {
			return ErrInvalidExpiration.Wrapf("at_time: %s", err)
		}
		*e = ExpiresAtTime(time.Unix(0, nanos))
	default:
		*e = NeverExpires()
	}

	return nil
}
