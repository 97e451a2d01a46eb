package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/x/market/types"
)

func TestExpirationJSON(t *testing.T) {
	at := time.Unix(1648938996, 0)

	tests := []struct {
		name string
		exp  types.Expiration
		json string
	}{
		{"never", types.NeverExpires(), `{"never":{}}`},
		{"height", types.ExpiresAtHeight(42), `{"at_height":42}`},
		{"time", types.ExpiresAtTime(at), `{"at_time":"1648938996000000000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bz, err := json.Marshal(tt.exp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(bz))

			var decoded types.Expiration
			require.NoError(t, json.Unmarshal([]byte(tt.json), &decoded))
			assert.Equal(t, tt.exp, decoded)
		})
	}
}

func TestExpirationJSONInvalid(t *testing.T) {
	for _, val := range []string{
		`{}`,
		`{"never":{},"at_height":1}`,
		`{"at_time":"soon"}`,
	} {
		var decoded types.Expiration
		require.ErrorIs(t, json.Unmarshal([]byte(val), &decoded), types.ErrInvalidExpiration, val)
	}
}

func TestNewTimeExpiration(t *testing.T) {
	at := time.Date(2262, 1, 1, 0, 0, 0, 0, time.UTC)

	exp, err := types.NewTimeExpiration(at)
	require.NoError(t, err)
	assert.Equal(t, types.ExpiresAtTime(at), exp)
	assert.True(t, at.Equal(exp.Time))

	for _, val := range []time.Time{
		time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := types.NewTimeExpiration(val)
		require.ErrorIs(t, err, types.ErrInvalidExpiration, val)
	}
}

func TestExpirationZeroValueNeverExpires(t *testing.T) {
	var exp types.Expiration
	assert.Equal(t, types.NeverExpires(), exp)
	assert.Equal(t, "never", exp.String())
}

func TestExpirationIsTimeExpired(t *testing.T) {
	now := time.Unix(1_000_000, 0)

	assert.False(t, types.NeverExpires().IsTimeExpired(now))
	assert.False(t, types.ExpiresAtHeight(1).IsTimeExpired(now))
	assert.False(t, types.ExpiresAtTime(now).IsTimeExpired(now))
	assert.False(t, types.ExpiresAtTime(now.Add(time.Second)).IsTimeExpired(now))
	assert.True(t, types.ExpiresAtTime(now.Add(-time.Second)).IsTimeExpired(now))

	// second resolution
	assert.False(t, types.ExpiresAtTime(now.Add(500*time.Millisecond)).IsTimeExpired(now.Add(900*time.Millisecond)))
}

func TestExpirationValidateListing(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	delta := types.DefaultMinExpirationDelta

	require.NoError(t, types.NeverExpires().ValidateListing(now, delta))
	require.NoError(t, types.ExpiresAtHeight(0).ValidateListing(now, delta))
	require.NoError(t, types.ExpiresAtTime(now.Add(delta)).ValidateListing(now, delta))
	require.NoError(t, types.ExpiresAtTime(now.Add(time.Hour)).ValidateListing(now, delta))

	err := types.ExpiresAtTime(now.Add(delta-time.Second)).ValidateListing(now, delta)
	require.ErrorIs(t, err, types.ErrInvalidExpiration)

	err = types.ExpiresAtTime(now.Add(-time.Hour)).ValidateListing(now, delta)
	require.ErrorIs(t, err, types.ErrInvalidExpiration)
}
