package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// ChainIdentityCmd prints the chain identity derived from a native chain id
func ChainIdentityCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "chain-identity [chain-id]",
		Short:   "Derive the revision independent chain identity of a chain id",
		Example: "accountibc chain-identity juno-1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := types.ChainIdentityFromChainID(args[0])
			if err := identity.Validate(); err != nil {
				return err
			}

			return printOutput(cmd, v, map[string]string{
				"chain_id": args[0],
				"identity": identity.String(),
			})
		},
	}
}

// AccountIDCmd builds the canonical account id from a sequence and an optional trace
func AccountIDCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "account-id [sequence] [trace-chain]...",
		Short:   "Build the canonical account id of a sequence reached through the given chains",
		Example: "accountibc account-id 7 juno osmosis",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := cast.ToUint32E(args[0])
			if err != nil {
				return fmt.Errorf("invalid account sequence %q: %w", args[0], err)
			}

			trace := make([]types.ChainIdentity, 0, len(args)-1)
			for _, arg := range args[1:] {
				chain, err := types.ParseChainIdentity(arg)
				if err != nil {
					return err
				}
				trace = append(trace, chain)
			}

			id := types.NewLocalAccountID(sequence)
			if len(trace) > 0 {
				id = types.NewRemoteAccountID(trace, sequence)
			}

			if err := id.Validate(); err != nil {
				return err
			}

			return printOutput(cmd, v, map[string]string{
				"account_id": id.String(),
				"trace":      id.TraceString(),
			})
		},
	}
}

// AddressCmd prints the deterministic remote account address a host assigns to an origin account
func AddressCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "address [origin-chain] [account-id]",
		Short:   "Compute the remote account and proxy addresses of an origin account on a host chain",
		Example: "accountibc address juno local-7",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := types.ParseChainIdentity(args[0])
			if err != nil {
				return err
			}

			account, err := types.ParseAccountID(args[1])
			if err != nil {
				return err
			}

			hostModule := v.GetString(flagHost)

			return printOutput(cmd, v, map[string]string{
				"account_id":    account.RemoteOn(origin).String(),
				"address":       types.GenerateAddress(hostModule, origin, account).String(),
				"proxy_address": types.GenerateProxyAddress(hostModule, origin).String(),
			})
		},
	}

	cmd.Flags().String(flagHost, types.HostSubModuleName, "module name the host addresses are derived from")

	return cmd
}

// DecodePacketCmd decodes and validates packet data
func DecodePacketCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-packet [file]",
		Short: "Decode and validate account ibc packet data, read from a file or from stdin with -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(cmd, v, args[0])
			if err != nil {
				return err
			}

			data, err := types.DecodePacketData(bz)
			if err != nil {
				return err
			}

			if err := data.ValidateBasic(); err != nil {
				return err
			}

			return printOutput(cmd, v, struct {
				Kind types.ActionKind `json:"kind"`
				types.PacketData
			}{data.Action.Kind(), data})
		},
	}

	cmd.Flags().Bool(flagBase64, false, "input is base64 encoded")

	return cmd
}

// DecodeAckCmd decodes an acknowledgement and the result it carries
func DecodeAckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-ack [file]",
		Short: "Decode an account ibc acknowledgement, read from a file or from stdin with -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(cmd, v, args[0])
			if err != nil {
				return err
			}

			ack, err := types.DecodeAcknowledgement(bz)
			if err != nil {
				return err
			}

			result, err := types.ResultFromAcknowledgement(ack)
			if err != nil {
				return err
			}

			return printOutput(cmd, v, result)
		},
	}

	cmd.Flags().Bool(flagBase64, false, "input is base64 encoded")

	return cmd
}

// ValidateGenesisCmd validates the account ibc genesis state of a genesis file. Both a full
// application genesis and a bare module genesis are accepted.
func ValidateGenesisCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Short: "Validate the account ibc genesis state of a genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := readInput(cmd, v, args[0])
			if err != nil {
				return err
			}

			gs, err := parseGenesis(bz)
			if err != nil {
				return err
			}

			if err := gs.Validate(); err != nil {
				return fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err)
			}

			return printOutput(cmd, v, map[string]int{
				"infrastructures":  len(gs.ControllerGenesisState.Infrastructures),
				"pending_actions":  len(gs.ControllerGenesisState.PendingActions),
				"client_endpoints": len(gs.HostGenesisState.ClientEndpoints),
				"remote_accounts":  len(gs.HostGenesisState.RemoteAccounts),
				"channel_states":   len(gs.HostGenesisState.ChannelStates),
			})
		},
	}
}

func parseGenesis(bz []byte) (types.GenesisState, error) {
	var appGenesis struct {
		AppState map[string]json.RawMessage `json:"app_state"`
	}
	if err := json.Unmarshal(bz, &appGenesis); err != nil {
		return types.GenesisState{}, fmt.Errorf("failed to unmarshal genesis: %w", err)
	}

	if appGenesis.AppState != nil {
		moduleState, ok := appGenesis.AppState[types.ModuleName]
		if !ok {
			return types.GenesisState{}, fmt.Errorf("genesis has no %s app state", types.ModuleName)
		}
		bz = moduleState
	}

	var gs types.GenesisState
	if err := types.ModuleCdc.UnmarshalJSON(bz, &gs); err != nil {
		return types.GenesisState{}, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}

	return gs, nil
}
