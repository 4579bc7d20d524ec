package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"
)

// InfrastructureLink is the trusted relay endpoint / remote host pair used for all traffic to a
// counterparty chain. A removed link keeps its record with Active set to false.
type InfrastructureLink struct {
	Chain         ChainIdentity `json:"chain" yaml:"chain"`
	RelayEndpoint string        `json:"relay_endpoint" yaml:"relay_endpoint"`
	RemoteHost    string        `json:"remote_host" yaml:"remote_host"`
	RemoteProxy   string        `json:"remote_proxy,omitempty" yaml:"remote_proxy"`
	Active        bool          `json:"active" yaml:"active"`
}

// NewInfrastructureLink creates a new active InfrastructureLink with an unconfirmed handshake
func NewInfrastructureLink(chain ChainIdentity, relayEndpoint, remoteHost string) InfrastructureLink {
	return InfrastructureLink{
		Chain:         chain,
		RelayEndpoint: relayEndpoint,
		RemoteHost:    remoteHost,
		Active:        true,
	}
}

// HandshakeComplete returns true once the counterparty confirmed the registration
func (l InfrastructureLink) HandshakeComplete() bool {
	return l.Active && l.RemoteProxy != ""
}

// Validate performs basic validation of the link
func (l InfrastructureLink) Validate() error {
	if err := l.Chain.Validate(); err != nil {
		return err
	}

	if !l.Active {
		if l.RelayEndpoint != "" || l.RemoteHost != "" || l.RemoteProxy != "" {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "removed infrastructure for %s must not carry addresses", l.Chain)
		}

		return nil
	}

	if strings.TrimSpace(l.RelayEndpoint) == "" || strings.TrimSpace(l.RemoteHost) == "" {
		return sdkerrors.Wrapf(ErrUnknownInfrastructure, "infrastructure for %s requires a relay endpoint and a remote host", l.Chain)
	}

	return nil
}

// String implements fmt.Stringer
func (l InfrastructureLink) String() string {
	out, _ := yaml.Marshal(l)
	return string(out)
}

// PendingAction is an action sent to a counterparty chain whose outcome is not yet known
type PendingAction struct {
	Sequence         uint64        `json:"sequence" yaml:"sequence"`
	Caller           string        `json:"caller" yaml:"caller"`
	Account          AccountID     `json:"account" yaml:"account"`
	CorrelationToken []byte        `json:"correlation_token,omitempty" yaml:"correlation_token"`
	Chain            ChainIdentity `json:"chain" yaml:"chain"`
	Kind             ActionKind    `json:"kind" yaml:"kind"`
}

// HasCallback returns true if the caller asked to be called back with the outcome
func (p PendingAction) HasCallback() bool {
	return len(p.CorrelationToken) > 0
}

// Validate performs basic validation of the pending action
func (p PendingAction) Validate() error {
	if p.Sequence == 0 {
		return sdkerrors.Wrap(ErrInvalidGenesis, "pending action sequence cannot be 0")
	}

	if strings.TrimSpace(p.Caller) == "" {
		return sdkerrors.Wrapf(ErrInvalidGenesis, "pending action %d has no caller", p.Sequence)
	}

	if err := p.Account.Validate(); err != nil {
		return err
	}

	return p.Chain.Validate()
}

// String implements fmt.Stringer
func (p PendingAction) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// RemoteAccountRecord maps an origin chain account to the Account provisioned on the host chain
type RemoteAccountRecord struct {
	OriginChain   ChainIdentity `json:"origin_chain" yaml:"origin_chain"`
	OriginAccount AccountID     `json:"origin_account" yaml:"origin_account"`
	AccountID     AccountID     `json:"account_id" yaml:"account_id"`
	Address       string        `json:"address" yaml:"address"`
	Name          string        `json:"name,omitempty" yaml:"name"`
	Description   string        `json:"description,omitempty" yaml:"description"`
	Link          string        `json:"link,omitempty" yaml:"link"`
}

// NewRemoteAccountRecord creates a new RemoteAccountRecord instance
func NewRemoteAccountRecord(origin ChainIdentity, account AccountID, addr sdk.AccAddress, info CreateRemoteAccountAction) RemoteAccountRecord {
	return RemoteAccountRecord{
		OriginChain:   origin,
		OriginAccount: account,
		AccountID:     account.RemoteOn(origin),
		Address:       addr.String(),
		Name:          info.Name,
		Description:   info.Description,
		Link:          info.Link,
	}
}

// Validate performs basic validation of the record
func (r RemoteAccountRecord) Validate() error {
	if err := r.OriginChain.Validate(); err != nil {
		return err
	}

	if err := r.OriginAccount.Validate(); err != nil {
		return err
	}

	if _, err := sdk.AccAddressFromBech32(r.Address); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid remote account address %s: %s", r.Address, err)
	}

	return nil
}

// String implements fmt.Stringer
func (r RemoteAccountRecord) String() string {
	out, _ := yaml.Marshal(r)
	return string(out)
}

// ClientEndpoint is the relay endpoint the host operator trusts for a client chain
type ClientEndpoint struct {
	Chain    ChainIdentity `json:"chain" yaml:"chain"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
}

// Validate performs basic validation of the client endpoint
func (e ClientEndpoint) Validate() error {
	if err := e.Chain.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(e.Endpoint) == "" {
		return sdkerrors.Wrapf(ErrUntrustedEndpoint, "empty endpoint for %s", e.Chain)
	}

	return nil
}

// ChannelState is the lifecycle state of the channel between a host and a client chain
type ChannelState string

const (
	ChannelStateOpen    ChannelState = "OPEN"
	ChannelStateClosing ChannelState = "CLOSING"
	ChannelStateClosed  ChannelState = "CLOSED"
)

// ChannelLifecycle records the channel currently connecting a client chain to the host. For a
// given channel id the state only moves forward: OPEN -> CLOSING -> CLOSED.
type ChannelLifecycle struct {
	Chain     ChainIdentity `json:"chain" yaml:"chain"`
	ChannelID string        `json:"channel_id" yaml:"channel_id"`
	State     ChannelState  `json:"state" yaml:"state"`
}

// IsHealthy returns true if the channel may still carry traffic
func (c ChannelLifecycle) IsHealthy() bool {
	return c.State == ChannelStateOpen || c.State == ChannelStateClosing
}

// CanTransition reports whether the record may move to the provided state
func (c ChannelLifecycle) CanTransition(next ChannelState) bool {
	switch c.State {
	case ChannelStateOpen:
		return next == ChannelStateClosing || next == ChannelStateClosed
	case ChannelStateClosing:
		return next == ChannelStateClosed
	default:
		return false
	}
}

// Validate performs basic validation of the lifecycle record
func (c ChannelLifecycle) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.ChannelID) == "" {
		return sdkerrors.Wrapf(ErrInvalidChannelTransition, "empty channel id for %s", c.Chain)
	}

	switch c.State {
	case ChannelStateOpen, ChannelStateClosing, ChannelStateClosed:
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalidChannelTransition, "unknown channel state %s", c.State)
	}
}

// String implements fmt.Stringer
func (c ChannelLifecycle) String() string {
	return fmt.Sprintf("%s/%s: %s", c.Chain, c.ChannelID, c.State)
}
