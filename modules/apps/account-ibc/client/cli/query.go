package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// QueryRoute returns the legacy query route of the provided account ibc query endpoint
func QueryRoute(endpoint string) string {
	return fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint)
}

// GetCmdControllerParams returns the command handler for the client submodule parameter querying.
func GetCmdControllerParams() *cobra.Command {
	return newListQueryCmd("params", "Query the current account ibc client submodule parameters", types.QueryControllerParams)
}

// GetCmdInfrastructures returns the command handler for querying all infrastructure links.
func GetCmdInfrastructures() *cobra.Command {
	return newListQueryCmd("infrastructures", "Query all infrastructure links of the account ibc client", types.QueryInfrastructures)
}

// GetCmdPendingActions returns the command handler for querying all pending actions.
func GetCmdPendingActions() *cobra.Command {
	return newListQueryCmd("pending-actions", "Query all actions awaiting an acknowledgement", types.QueryPendingActions)
}

// GetCmdHostParams returns the command handler for the host submodule parameter querying.
func GetCmdHostParams() *cobra.Command {
	return newListQueryCmd("params", "Query the current account ibc host submodule parameters", types.QueryHostParams)
}

// GetCmdRemoteAccounts returns the command handler for querying all remote account records.
func GetCmdRemoteAccounts() *cobra.Command {
	return newListQueryCmd("remote-accounts", "Query all remote accounts provisioned by the host", types.QueryRemoteAccounts)
}

// GetCmdClientEndpoints returns the command handler for querying the trusted client endpoints.
func GetCmdClientEndpoints() *cobra.Command {
	return newListQueryCmd("client-endpoints", "Query the relay endpoints trusted by the host", types.QueryClientEndpoints)
}

// GetCmdChannelStates returns the command handler for querying the channel lifecycle records.
func GetCmdChannelStates() *cobra.Command {
	return newListQueryCmd("channel-states", "Query the channel lifecycle of every client chain", types.QueryChannelStates)
}

// GetCmdInfrastructure returns the command handler for querying the infrastructure link of a chain.
func GetCmdInfrastructure() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "infrastructure [chain]",
		Short:   "Query the infrastructure link of a counterparty chain",
		Long:    "Query the infrastructure link of a counterparty chain",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query account-ibc client infrastructure osmosis", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			chain, err := types.ParseChainIdentity(args[0])
			if err != nil {
				return err
			}

			return queryWithParams(clientCtx, types.QueryInfrastructure, types.NewQueryInfrastructureParams(chain))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdPendingAction returns the command handler for querying a pending action by sequence.
func GetCmdPendingAction() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pending-action [sequence]",
		Short:   "Query an action awaiting an acknowledgement",
		Long:    "Query an action awaiting an acknowledgement",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query account-ibc client pending-action 12", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			sequence, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}

			return queryWithParams(clientCtx, types.QueryPendingAction, types.NewQueryPendingActionParams(sequence))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdRemoteAccount returns the command handler for querying the remote account of an origin account.
func GetCmdRemoteAccount() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remote-account [origin-chain] [account-id]",
		Short:   "Query the remote account provisioned for an origin account",
		Long:    "Query the remote account provisioned for an origin account",
		Args:    cobra.ExactArgs(2),
		Example: fmt.Sprintf("%s query account-ibc host remote-account juno local-7", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			chain, err := types.ParseChainIdentity(args[0])
			if err != nil {
				return err
			}

			account, err := types.ParseAccountID(args[1])
			if err != nil {
				return err
			}

			return queryWithParams(clientCtx, types.QueryRemoteAccount, types.NewQueryRemoteAccountParams(chain, account))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func newListQueryCmd(use, short, endpoint string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(QueryRoute(endpoint), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func queryWithParams(clientCtx client.Context, endpoint string, params interface{}) error {
	bz, err := types.ModuleCdc.MarshalJSON(params)
	if err != nil {
		return err
	}

	res, _, err := clientCtx.QueryWithData(QueryRoute(endpoint), bz)
	if err != nil {
		return err
	}

	return clientCtx.PrintBytes(res)
}
