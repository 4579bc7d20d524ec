package ibctesting

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// DefaultChannelID is the channel id both endpoints of a path open
const DefaultChannelID = "channel-0"

// Endpoint represents one side of a path between two test chains: the client of its chain
// sending to the counterparty, and the host of its chain serving the counterparty.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint
	ChannelID    string
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(chain *TestChain) *Endpoint {
	return &Endpoint{
		Chain:     chain,
		ChannelID: DefaultChannelID,
	}
}

// RelayEndpoint returns the relay endpoint the chain's client sends from
func (endpoint *Endpoint) RelayEndpoint() string {
	return endpoint.Chain.ControllerKeeper.GetRelayEndpoint().String()
}

// HostAddress returns the address of the chain's host
func (endpoint *Endpoint) HostAddress() string {
	return endpoint.Chain.HostKeeper.GetHostAddress().String()
}

// TrustCounterparty registers the counterparty's relay endpoint on this chain's host
func (endpoint *Endpoint) TrustCounterparty() error {
	return endpoint.Chain.HostKeeper.RegisterClientEndpoint(
		endpoint.Chain.GetContext(), endpoint.Chain.Authority.String(),
		endpoint.Counterparty.Chain.Identity, endpoint.Counterparty.RelayEndpoint(),
	)
}

// OpenChannel records the channel to the counterparty as open on this chain's host
func (endpoint *Endpoint) OpenChannel() error {
	return endpoint.Chain.HostModule.OnChanOpenConfirm(endpoint.Chain.GetContext(), endpoint.Counterparty.Chain.Identity, endpoint.ChannelID)
}

// CloseChannel closes the channel to the counterparty on this chain's host
func (endpoint *Endpoint) CloseChannel() error {
	ctx := endpoint.Chain.GetContext()
	if err := endpoint.Chain.HostModule.OnChanCloseInit(ctx, endpoint.Counterparty.Chain.Identity, endpoint.ChannelID); err != nil {
		return err
	}

	return endpoint.Chain.HostModule.OnChanCloseConfirm(ctx, endpoint.Counterparty.Chain.Identity, endpoint.ChannelID)
}

// RegisterInfrastructure registers the counterparty's host on this chain's client and sends the
// register packet.
func (endpoint *Endpoint) RegisterInfrastructure() (uint64, error) {
	return endpoint.Chain.ControllerKeeper.RegisterInfrastructure(
		endpoint.Chain.GetContext(), endpoint.Chain.Authority.String(),
		endpoint.Counterparty.Chain.Identity, endpoint.Counterparty.HostAddress(), endpoint.RelayEndpoint(),
	)
}

// InfrastructureLink returns the link of this chain's client to the counterparty
func (endpoint *Endpoint) InfrastructureLink() types.InfrastructureLink {
	link, _ := endpoint.Chain.ControllerKeeper.GetInfrastructure(endpoint.Chain.GetContext(), endpoint.Counterparty.Chain.Identity)
	return link
}

// SendAction sends the action as CallerModule on behalf of the account to the counterparty
func (endpoint *Endpoint) SendAction(account types.AccountID, action types.Action, token []byte, retries *uint32) (uint64, error) {
	return endpoint.Chain.ControllerKeeper.SendAction(
		endpoint.Chain.GetContext(), CallerModule, account, endpoint.Counterparty.Chain.Identity, action, token, retries,
	)
}
