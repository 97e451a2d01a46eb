package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/testutil"
	"github.com/nftmx/node/x/market/types"
)

func TestParseExecuteMsg(t *testing.T) {
	sender := testutil.AccAddress(t).String()
	key := testutil.AssetKey(t)

	payload := `{"create_order":{"collection":"` + key.Collection + `","token_id":"` + key.TokenID +
		`","price":{"info":{"native_token":{"denom":"uatom"}},"amount":"100"},"expire_at":{"never":{}}}}`

	msg, err := types.ParseExecuteMsg([]byte(payload), sender)
	require.NoError(t, err)

	create, ok := msg.(*types.MsgCreateOrder)
	require.True(t, ok)
	assert.Equal(t, sender, create.Sender)
	assert.Equal(t, key, create.AssetKey)
	assert.Equal(t, "100uatom", create.Price.String())
	assert.Equal(t, types.NeverExpires(), create.Expiration)
	require.NoError(t, create.ValidateBasic())
}

func TestParseExecuteMsgSenderOverride(t *testing.T) {
	sender := testutil.AccAddress(t).String()
	key := testutil.AssetKey(t)

	env, err := types.WrapExecuteMsg(&types.MsgCancelBid{Sender: testutil.AccAddress(t).String(), AssetKey: key})
	require.NoError(t, err)

	bz, err := json.Marshal(env)
	require.NoError(t, err)

	msg, err := types.ParseExecuteMsg(bz, sender)
	require.NoError(t, err)
	assert.Equal(t, sender, msg.GetSender())
	assert.Equal(t, key, msg.GetAssetKey())
	assert.Equal(t, types.ActionCancelBid, msg.Type())
}

func TestParseExecuteMsgInvalid(t *testing.T) {
	sender := testutil.AccAddress(t).String()

	for _, payload := range []string{
		`{}`,
		`not json`,
		`{"cancel_bid":{},"cancel_order":{}}`,
	} {
		_, err := types.ParseExecuteMsg([]byte(payload), sender)
		require.ErrorIs(t, err, types.ErrUnknownRequest, payload)
	}
}

func TestMsgValidateBasic(t *testing.T) {
	sender := testutil.AccAddress(t).String()
	key := testutil.AssetKey(t)

	require.NoError(t, types.MsgCancelOrder{Sender: sender, AssetKey: key}.ValidateBasic())
	require.ErrorIs(t, types.MsgCancelOrder{Sender: "bad", AssetKey: key}.ValidateBasic(), types.ErrInvalidAddress)
	require.ErrorIs(t, types.MsgExecuteOrder{Sender: sender}.ValidateBasic(), types.ErrInvalidAssetKey)

	// zero price passes basic validation; the engine reports it
	require.NoError(t, types.MsgCreateOrder{Sender: sender, AssetKey: key, Price: testutil.NativeAsset(t, 0)}.ValidateBasic())
	require.ErrorIs(t, types.MsgCreateBid{Sender: sender, AssetKey: key}.ValidateBasic(), types.ErrInvalidDenomination)
}

func TestGenesisValidate(t *testing.T) {
	seller := testutil.AccAddress(t).String()
	key := testutil.AssetKey(t)

	order := types.Order{AssetKey: key, Seller: seller, Price: testutil.NativeAsset(t, 10)}
	bid := types.Bid{AssetKey: key, Bidder: testutil.AccAddress(t).String(), Seller: seller, Price: testutil.NativeAsset(t, 11)}

	require.NoError(t, types.DefaultGenesisState().Validate())
	require.NoError(t, types.GenesisState{Params: types.DefaultParams(), Orders: types.Orders{order}, Bids: types.Bids{bid}}.Validate())

	tests := []struct {
		name string
		gs   types.GenesisState
	}{
		{"duplicate order", types.GenesisState{Params: types.DefaultParams(), Orders: types.Orders{order, order}}},
		{"duplicate bid", types.GenesisState{Params: types.DefaultParams(), Orders: types.Orders{order}, Bids: types.Bids{bid, bid}}},
		{"orphan bid", types.GenesisState{Params: types.DefaultParams(), Bids: types.Bids{bid}}},
		{"zero price order", types.GenesisState{Params: types.DefaultParams(), Orders: types.Orders{{AssetKey: key, Seller: seller, Price: testutil.NativeAsset(t, 0)}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.gs.Validate(), types.ErrInvalidGenesis)
		})
	}
}
