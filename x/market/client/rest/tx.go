package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nftmx/node/x/market/types"
)

// Deliverer executes one marketplace command per call
type Deliverer interface {
	Deliver(types.Msg) (*types.TxResult, error)
}

// TxRequest carries an execute envelope such as {"cancel_bid":{...}} and the
// account it runs as
type TxRequest struct {
	Sender string          `json:"sender"`
	Msg    json.RawMessage `json:"msg"`
}

// RegisterTxRoutes registers the command route. The host behind it trusts the
// sender named in the request and must not be exposed beyond a local network.
func RegisterTxRoutes(d Deliverer, r *mux.Router, ns string) {
	r.HandleFunc(fmt.Sprintf("/%s/tx", ns), deliverHandler(d)).Methods("POST")
}

func deliverHandler(d Deliverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.ErrUnknownRequest.Wrapf("decode request: %s", err))
			return
		}

		msg, err := types.ParseExecuteMsg(req.Msg, req.Sender)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := msg.ValidateBasic(); err != nil {
			writeError(w, err)
			return
		}

		res, err := d.Deliver(msg)
		if err != nil {
			writeError(w, err)
			return
		}

		buf, err := json.Marshal(res)
		writeResponse(w, buf, err)
	}
}
