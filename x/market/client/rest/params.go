package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nftmx/node/x/market/query"
	"github.com/nftmx/node/x/market/types"
)

// AssetKeyFromRequest returns the asset key from the collection and token_id route variables
func AssetKeyFromRequest(r *http.Request) (types.AssetKey, error) {
	vars := mux.Vars(r)

	key := types.MakeAssetKey(vars["collection"], vars["token_id"])
	if err := key.Validate(); err != nil {
		return types.AssetKey{}, err
	}

	return key, nil
}

// FiltersFromRequest returns listing filters from the query string
func FiltersFromRequest(r *http.Request) query.Filters {
	return query.Filters{
		Collection: r.URL.Query().Get("collection"),
	}
}
