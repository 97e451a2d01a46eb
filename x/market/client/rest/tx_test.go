package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/nftmx/node/app"
	"github.com/nftmx/node/testutil"
	"github.com/nftmx/node/x/market/client/rest"
	"github.com/nftmx/node/x/market/types"
)

func setupHostServer(t *testing.T) (*app.App, *httptest.Server) {
	a, err := app.NewApp(app.WithLogger(testutil.Logger(t)))
	require.NoError(t, err)

	r := mux.NewRouter()
	rest.RegisterRoutes(a, r, types.ModuleName)
	rest.RegisterTxRoutes(a, r, types.ModuleName)
	rest.RegisterEventRoutes(a, r, types.ModuleName, testutil.Logger(t))

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close()
	})

	return a, srv
}

func post(t *testing.T, srv *httptest.Server, sender string, msg string, obj interface{}) int {
	t.Helper()

	body, err := json.Marshal(rest.TxRequest{Sender: sender, Msg: json.RawMessage(msg)})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/nftmarket/tx", "application/json", bytes.NewReader(body)) // nolint: gosec, noctx
	require.NoError(t, err)
	defer resp.Body.Close()

	if obj != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(obj))
	}
	return resp.StatusCode
}

func createOrderMsg(key types.AssetKey, amount int64) string {
	return fmt.Sprintf(`{"create_order":{"collection":%q,"token_id":%q,`+
		`"price":{"info":{"native_token":{"denom":%q}},"amount":"%d"},"expire_at":{"never":{}}}}`,
		key.Collection, key.TokenID, testutil.CoinDenom, amount)
}

func TestRESTDeliver(t *testing.T) {
	a, srv := setupHostServer(t)

	key := testutil.AssetKey(t)
	seller := testutil.AccAddress(t).String()

	_, err := a.Mint(key, seller)
	require.NoError(t, err)

	var res types.TxResult
	require.Equal(t, http.StatusOK, post(t, srv, seller, createOrderMsg(key, 100), &res))
	require.Equal(t, int64(2), res.Height)

	action, ok := res.Response.Attribute(types.AttributeKeyAction)
	require.True(t, ok)
	require.Equal(t, types.ActionCreateOrder, action)

	var order types.Order
	require.Equal(t, http.StatusOK, get(t, srv, "/nftmarket/order/"+key.Collection+"/"+key.TokenID, &order))
	require.Equal(t, seller, order.Seller)

	// occupied asset key
	require.Equal(t, http.StatusBadRequest, post(t, srv, seller, createOrderMsg(key, 100), nil))

	// only the seller settles
	stranger := testutil.AccAddress(t).String()
	execute := fmt.Sprintf(`{"execute_order":{"collection":%q,"token_id":%q}}`, key.Collection, key.TokenID)
	require.Equal(t, http.StatusForbidden, post(t, srv, stranger, execute, nil))

	require.Equal(t, http.StatusBadRequest, post(t, srv, seller, `{"bogus":{}}`, nil))
	require.Equal(t, http.StatusBadRequest, post(t, srv, "bogus", createOrderMsg(testutil.AssetKey(t), 1), nil))

	require.Equal(t, int64(2), a.LastBlockHeight())
}

func TestRESTEvents(t *testing.T) {
	a, srv := setupHostServer(t)

	key := testutil.AssetKey(t)
	seller := testutil.AccAddress(t).String()
	bidder := testutil.AccAddress(t).String()

	_, err := a.Mint(key, seller)
	require.NoError(t, err)
	_, err = a.Fund(bidder, testutil.CoinDenom, sdkmath.NewInt(500))
	require.NoError(t, err)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/nftmarket/events", nil)
	require.NoError(t, err)
	defer ws.Close()

	require.Equal(t, http.StatusOK, post(t, srv, seller, createOrderMsg(key, 100), nil))

	bid := fmt.Sprintf(`{"create_bid":{"collection":%q,"token_id":%q,`+
		`"price":{"info":{"native_token":{"denom":%q}},"amount":"150"},"expire_at":{"never":{}}}}`,
		key.Collection, key.TokenID, testutil.CoinDenom)
	require.Equal(t, http.StatusOK, post(t, srv, bidder, bid, nil))

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	for _, expected := range []string{types.ActionCreateOrder, types.ActionCreateBid} {
		var res types.TxResult
		require.NoError(t, ws.ReadJSON(&res))

		action, ok := res.Response.Attribute(types.AttributeKeyAction)
		require.True(t, ok)
		require.Equal(t, expected, action)
	}
}
