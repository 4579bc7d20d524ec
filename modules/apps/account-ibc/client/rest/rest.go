package rest

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	clientrest "github.com/cosmos/cosmos-sdk/client/rest"
	"github.com/gorilla/mux"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

const (
	RestChain    = "chain"
	RestSequence = "sequence"
	RestAccount  = "account"
)

// RegisterRoutes registers the account ibc REST routes on the provided router
func RegisterRoutes(clientCtx client.Context, rtr *mux.Router) {
	r := clientrest.WithHTTPDeprecationHeaders(rtr)

	r.HandleFunc("/account-ibc/client/params", listHandlerFn(clientCtx, types.QueryControllerParams)).Methods("GET")
	r.HandleFunc("/account-ibc/client/infrastructures", listHandlerFn(clientCtx, types.QueryInfrastructures)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/account-ibc/client/infrastructures/{%s}", RestChain), infrastructureHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc("/account-ibc/client/pending_actions", listHandlerFn(clientCtx, types.QueryPendingActions)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/account-ibc/client/pending_actions/{%s}", RestSequence), pendingActionHandlerFn(clientCtx)).Methods("GET")

	r.HandleFunc("/account-ibc/host/params", listHandlerFn(clientCtx, types.QueryHostParams)).Methods("GET")
	r.HandleFunc("/account-ibc/host/remote_accounts", listHandlerFn(clientCtx, types.QueryRemoteAccounts)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/account-ibc/host/remote_accounts/{%s}/{%s}", RestChain, RestAccount), remoteAccountHandlerFn(clientCtx)).Methods("GET")
	r.HandleFunc("/account-ibc/host/client_endpoints", listHandlerFn(clientCtx, types.QueryClientEndpoints)).Methods("GET")
	r.HandleFunc("/account-ibc/host/channel_states", listHandlerFn(clientCtx, types.QueryChannelStates)).Methods("GET")
}

func queryRoute(endpoint string) string {
	return fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint)
}
