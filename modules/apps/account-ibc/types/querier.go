package types

// query endpoints supported by the account ibc querier
const (
	QueryControllerParams = "controller_params"
	QueryInfrastructure   = "infrastructure"
	QueryInfrastructures  = "infrastructures"
	QueryPendingAction    = "pending_action"
	QueryPendingActions   = "pending_actions"

	QueryHostParams      = "host_params"
	QueryRemoteAccount   = "remote_account"
	QueryRemoteAccounts  = "remote_accounts"
	QueryClientEndpoints = "client_endpoints"
	QueryChannelStates   = "channel_states"
)

// QueryInfrastructureParams defines the params for querying the infrastructure link of a chain
type QueryInfrastructureParams struct {
	Chain ChainIdentity `json:"chain" yaml:"chain"`
}

// NewQueryInfrastructureParams creates a new instance of QueryInfrastructureParams
func NewQueryInfrastructureParams(chain ChainIdentity) QueryInfrastructureParams {
	return QueryInfrastructureParams{Chain: chain}
}

// QueryPendingActionParams defines the params for querying a pending action by sequence
type QueryPendingActionParams struct {
	Sequence uint64 `json:"sequence" yaml:"sequence"`
}

// NewQueryPendingActionParams creates a new instance of QueryPendingActionParams
func NewQueryPendingActionParams(sequence uint64) QueryPendingActionParams {
	return QueryPendingActionParams{Sequence: sequence}
}

// QueryRemoteAccountParams defines the params for querying the remote account of an origin account
type QueryRemoteAccountParams struct {
	Chain   ChainIdentity `json:"chain" yaml:"chain"`
	Account AccountID     `json:"account" yaml:"account"`
}

// NewQueryRemoteAccountParams creates a new instance of QueryRemoteAccountParams
func NewQueryRemoteAccountParams(chain ChainIdentity, account AccountID) QueryRemoteAccountParams {
	return QueryRemoteAccountParams{Chain: chain, Account: account}
}
