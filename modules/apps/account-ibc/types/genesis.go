package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState defines the account ibc genesis state
type GenesisState struct {
	ControllerGenesisState ControllerGenesisState `json:"controller_genesis_state" yaml:"controller_genesis_state"`
	HostGenesisState       HostGenesisState       `json:"host_genesis_state" yaml:"host_genesis_state"`
}

// NewGenesisState creates and returns a new GenesisState instance from the provided controller and host genesis state types
func NewGenesisState(controllerGenesisState ControllerGenesisState, hostGenesisState HostGenesisState) *GenesisState {
	return &GenesisState{
		ControllerGenesisState: controllerGenesisState,
		HostGenesisState:       hostGenesisState,
	}
}

// DefaultGenesis creates and returns the account ibc GenesisState
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		ControllerGenesisState: DefaultControllerGenesis(),
		HostGenesisState:       DefaultHostGenesis(),
	}
}

// Validate performs basic validation of the account ibc GenesisState
func (gs GenesisState) Validate() error {
	if err := gs.ControllerGenesisState.Validate(); err != nil {
		return err
	}

	return gs.HostGenesisState.Validate()
}

// ControllerGenesisState defines the client submodule genesis state
type ControllerGenesisState struct {
	Params          ControllerParams     `json:"params" yaml:"params"`
	Infrastructures []InfrastructureLink `json:"infrastructures" yaml:"infrastructures"`
	PendingActions  []PendingAction      `json:"pending_actions" yaml:"pending_actions"`
	NextSequence    uint64               `json:"next_sequence" yaml:"next_sequence"`
}

// NewControllerGenesisState creates a returns a new ControllerGenesisState instance
func NewControllerGenesisState(params ControllerParams, links []InfrastructureLink, pending []PendingAction, nextSequence uint64) ControllerGenesisState {
	return ControllerGenesisState{
		Params:          params,
		Infrastructures: links,
		PendingActions:  pending,
		NextSequence:    nextSequence,
	}
}

// DefaultControllerGenesis creates and returns the default client submodule GenesisState
func DefaultControllerGenesis() ControllerGenesisState {
	return ControllerGenesisState{
		Params:       DefaultControllerParams(),
		NextSequence: 1,
	}
}

// Validate performs basic validation of the ControllerGenesisState
func (gs ControllerGenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextSequence == 0 {
		return sdkerrors.Wrap(ErrInvalidGenesis, "next sequence cannot be 0")
	}

	chains := make(map[ChainIdentity]bool)
	for _, link := range gs.Infrastructures {
		if err := link.Validate(); err != nil {
			return err
		}

		if chains[link.Chain] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate infrastructure for %s", link.Chain)
		}
		chains[link.Chain] = true
	}

	sequences := make(map[uint64]bool)
	for _, pending := range gs.PendingActions {
		if err := pending.Validate(); err != nil {
			return err
		}

		if sequences[pending.Sequence] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate pending action sequence %d", pending.Sequence)
		}
		sequences[pending.Sequence] = true

		if pending.Sequence >= gs.NextSequence {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "pending action sequence %d must be lower than next sequence %d", pending.Sequence, gs.NextSequence)
		}
	}

	return nil
}

// HostGenesisState defines the host submodule genesis state
type HostGenesisState struct {
	Params          HostParams            `json:"params" yaml:"params"`
	ClientEndpoints []ClientEndpoint      `json:"client_endpoints" yaml:"client_endpoints"`
	RemoteAccounts  []RemoteAccountRecord `json:"remote_accounts" yaml:"remote_accounts"`
	ChannelStates   []ChannelLifecycle    `json:"channel_states" yaml:"channel_states"`
}

// NewHostGenesisState creates a returns a new HostGenesisState instance
func NewHostGenesisState(params HostParams, endpoints []ClientEndpoint, accounts []RemoteAccountRecord, channels []ChannelLifecycle) HostGenesisState {
	return HostGenesisState{
		Params:          params,
		ClientEndpoints: endpoints,
		RemoteAccounts:  accounts,
		ChannelStates:   channels,
	}
}

// DefaultHostGenesis creates and returns the default host submodule GenesisState
func DefaultHostGenesis() HostGenesisState {
	return HostGenesisState{
		Params: DefaultHostParams(),
	}
}

// Validate performs basic validation of the HostGenesisState
func (gs HostGenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	endpoints := make(map[ChainIdentity]bool)
	for _, endpoint := range gs.ClientEndpoints {
		if err := endpoint.Validate(); err != nil {
			return err
		}

		if endpoints[endpoint.Chain] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate client endpoint for %s", endpoint.Chain)
		}
		endpoints[endpoint.Chain] = true
	}

	accounts := make(map[string]bool)
	for _, record := range gs.RemoteAccounts {
		if err := record.Validate(); err != nil {
			return err
		}

		key := fmt.Sprintf("%s/%s", record.OriginChain, record.OriginAccount)
		if accounts[key] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate remote account %s", key)
		}
		accounts[key] = true
	}

	channels := make(map[ChainIdentity]bool)
	for _, channel := range gs.ChannelStates {
		if err := channel.Validate(); err != nil {
			return err
		}

		if channels[channel.Chain] {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate channel state for %s", channel.Chain)
		}
		channels[channel.Chain] = true
	}

	return nil
}
