package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	"github.com/gorilla/mux"

	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

// RegisterRoutes registers all query routes
func RegisterRoutes(node query.Node, r *mux.Router, ns string) {
	// Engine version
	r.HandleFunc(fmt.Sprintf("/%s/version", ns), getVersionHandler(node, ns)).Methods("GET")

	// Get all orders
	r.HandleFunc(fmt.Sprintf("/%s/order/list", ns), listOrdersHandler(node, ns)).Methods("GET")

	// Get single order info
	r.HandleFunc(fmt.Sprintf("/%s/order/{collection}/{token_id:.+}", ns), getOrderHandler(node, ns)).Methods("GET")

	// Get all bids
	r.HandleFunc(fmt.Sprintf("/%s/bid/list", ns), listBidsHandler(node, ns)).Methods("GET")

	// Get single bid info
	r.HandleFunc(fmt.Sprintf("/%s/bid/{collection}/{token_id:.+}", ns), getBidHandler(node, ns)).Methods("GET")

	// Module parameters
	r.HandleFunc(fmt.Sprintf("/%s/params", ns), getParamsHandler(node, ns)).Methods("GET")
}

func getVersionHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResponse(w, query.NewRawClient(node, ns).Version())
	}
}

func listOrdersHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, query.NewRawClient(node, ns).Orders(FiltersFromRequest(r)))
	}
}

func getOrderHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := AssetKeyFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, query.NewRawClient(node, ns).Order(key))
	}
}

func listBidsHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, query.NewRawClient(node, ns).Bids(FiltersFromRequest(r)))
	}
}

func getBidHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := AssetKeyFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, query.NewRawClient(node, ns).Bid(key))
	}
}

func getParamsHandler(node query.Node, ns string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResponse(w, query.NewRawClient(node, ns).Params())
	}
}

func writeResponse(w http.ResponseWriter, buf []byte, err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch codespace, _, _ := errorsmod.ABCIInfo(err, false); {
	case errors.Is(err, types.ErrOrderNotFound), errors.Is(err, types.ErrBidNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrUnauthorized):
		status = http.StatusForbidden
	case codespace != errorsmod.UndefinedCodespace:
		// registered errors are rejections of the request itself
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
