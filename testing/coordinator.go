package ibctesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// ChainIDJuno is the chain id of the first test chain
	ChainIDJuno = "juno-1"
	// ChainIDOsmosis is the chain id of the second test chain
	ChainIDOsmosis = "osmosis-1"
)

// Coordinator is a testing struct which contains the TestChain's and relays packets and token
// transfers between them.
type Coordinator struct {
	*testing.T

	Chains map[string]*TestChain
}

// NewCoordinator initializes a Coordinator with a juno and an osmosis TestChain
func NewCoordinator(t *testing.T) *Coordinator {
	t.Helper()

	coord := &Coordinator{T: t}
	coord.Chains = map[string]*TestChain{
		ChainIDJuno:    NewTestChain(t, coord, ChainIDJuno),
		ChainIDOsmosis: NewTestChain(t, coord, ChainIDOsmosis),
	}

	return coord
}

// GetChain returns the TestChain using the given chainID and returns an error if it does
// not exist.
func (coord *Coordinator) GetChain(chainID string) *TestChain {
	chain, found := coord.Chains[chainID]
	require.True(coord.T, found, "%s chain does not exist", chainID)
	return chain
}

// Setup trusts each chain's relay endpoint on the other chain's host, opens the channel on both
// sides and completes the infrastructure registration handshake in both directions.
func (coord *Coordinator) Setup(path *Path) {
	coord.SetupHosts(path)
	coord.SetupInfrastructure(path)
}

// SetupHosts registers the client endpoints and opens the channels on both hosts
func (coord *Coordinator) SetupHosts(path *Path) {
	require.NoError(coord.T, path.EndpointA.TrustCounterparty())
	require.NoError(coord.T, path.EndpointB.TrustCounterparty())

	require.NoError(coord.T, path.EndpointA.OpenChannel())
	require.NoError(coord.T, path.EndpointB.OpenChannel())
}

// SetupInfrastructure registers the infrastructure links on both clients and relays the register
// packets and their acknowledgements.
func (coord *Coordinator) SetupInfrastructure(path *Path) {
	_, err := path.EndpointA.RegisterInfrastructure()
	require.NoError(coord.T, err)

	_, err = path.EndpointB.RegisterInfrastructure()
	require.NoError(coord.T, err)

	coord.RelayAll(path.EndpointA.Chain, path.EndpointB.Chain)
	coord.RelayAll(path.EndpointB.Chain, path.EndpointA.Chain)

	require.True(coord.T, path.EndpointA.InfrastructureLink().HandshakeComplete())
	require.True(coord.T, path.EndpointB.InfrastructureLink().HandshakeComplete())
}
