package cli

import (
	"github.com/spf13/cobra"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// GetQueryCmd returns the query commands for the account ibc module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "account-ibc",
		Aliases:                    []string{types.ModuleName},
		Short:                      "account ibc subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetControllerQueryCmd(),
		GetHostQueryCmd(),
	)

	return queryCmd
}

// GetControllerQueryCmd returns the query commands for the account ibc client submodule
func GetControllerQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "client",
		Short:                      "account ibc client submodule query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdControllerParams(),
		GetCmdInfrastructure(),
		GetCmdInfrastructures(),
		GetCmdPendingAction(),
		GetCmdPendingActions(),
	)

	return queryCmd
}

// GetHostQueryCmd returns the query commands for the account ibc host submodule
func GetHostQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "host",
		Short:                      "account ibc host submodule query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdHostParams(),
		GetCmdRemoteAccount(),
		GetCmdRemoteAccounts(),
		GetCmdClientEndpoints(),
		GetCmdChannelStates(),
	)

	return queryCmd
}
