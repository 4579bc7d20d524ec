package rest

import (
	"net/http"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"
	"github.com/spf13/cast"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func listHandlerFn(clientCtx client.Context, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queryWithParams(w, r, clientCtx, endpoint, nil)
	}
}

func infrastructureHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chain, err := types.ParseChainIdentity(mux.Vars(r)[RestChain])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		queryWithParams(w, r, clientCtx, types.QueryInfrastructure, types.NewQueryInfrastructureParams(chain))
	}
}

func pendingActionHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sequence, err := cast.ToUint64E(mux.Vars(r)[RestSequence])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		queryWithParams(w, r, clientCtx, types.QueryPendingAction, types.NewQueryPendingActionParams(sequence))
	}
}

func remoteAccountHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		chain, err := types.ParseChainIdentity(vars[RestChain])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		account, err := types.ParseAccountID(vars[RestAccount])
		if rest.CheckBadRequestError(w, err) {
			return
		}

		queryWithParams(w, r, clientCtx, types.QueryRemoteAccount, types.NewQueryRemoteAccountParams(chain, account))
	}
}

func queryWithParams(w http.ResponseWriter, r *http.Request, clientCtx client.Context, endpoint string, params interface{}) {
	w.Header().Set("Content-Type", "application/json")

	clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
	if !ok {
		return
	}

	var bz []byte
	if params != nil {
		var err error
		bz, err = types.ModuleCdc.MarshalJSON(params)
		if rest.CheckBadRequestError(w, err) {
			return
		}
	}

	res, height, err := clientCtx.QueryWithData(queryRoute(endpoint), bz)
	if rest.CheckInternalServerError(w, err) {
		return
	}

	clientCtx = clientCtx.WithHeight(height)
	rest.PostProcessResponse(w, clientCtx, res)
}
