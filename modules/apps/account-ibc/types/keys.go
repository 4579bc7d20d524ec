package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the account ibc module name
	ModuleName = "accountibc"

	// Version defines the current version of the account action protocol
	Version = "account-ibc-1"

	// StoreKey is the store key string for the account ibc module
	StoreKey = ModuleName

	// RouterKey is the message route for the account ibc module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the account ibc module
	QuerierRoute = ModuleName

	// ControllerSubModuleName defines the client side (controller) submodule name
	ControllerSubModuleName = "accountclient"

	// HostSubModuleName defines the host side submodule name
	HostSubModuleName = "accounthost"

	// ControllerStoreKey is the store key string for the controller submodule
	ControllerStoreKey = ControllerSubModuleName

	// HostStoreKey is the store key string for the host submodule
	HostStoreKey = HostSubModuleName
)

const (
	// InfrastructureKeyPrefix defines the key prefix for infrastructure links
	InfrastructureKeyPrefix = "infrastructure"
	// PendingActionKeyPrefix defines the key prefix for pending actions
	PendingActionKeyPrefix = "pending"
	// RemoteAccountKeyPrefix defines the key prefix for remote account records
	RemoteAccountKeyPrefix = "remoteAccount"
	// ClientEndpointKeyPrefix defines the key prefix for trusted client endpoints
	ClientEndpointKeyPrefix = "clientEndpoint"
	// ChannelStateKeyPrefix defines the key prefix for channel lifecycle records
	ChannelStateKeyPrefix = "channelState"
)

var (
	// NextSequenceKey defines the key under which the next pending action sequence is stored
	NextSequenceKey = []byte("nextSequence")
)

// KeyInfrastructure creates and returns a new key used for infrastructure link store operations
func KeyInfrastructure(chain ChainIdentity) []byte {
	return []byte(fmt.Sprintf("%s/%s", InfrastructureKeyPrefix, chain))
}

// KeyPendingAction creates and returns a new key used for pending action store operations.
// The sequence is big endian encoded so that iteration follows send order.
func KeyPendingAction(sequence uint64) []byte {
	return append([]byte(PendingActionKeyPrefix+"/"), sdk.Uint64ToBigEndian(sequence)...)
}

// KeyRemoteAccount creates and returns a new key used for remote account store operations
func KeyRemoteAccount(chain ChainIdentity, account AccountID) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s", RemoteAccountKeyPrefix, chain, account))
}

// KeyClientEndpoint creates and returns a new key used for trusted client endpoint store operations
func KeyClientEndpoint(chain ChainIdentity) []byte {
	return []byte(fmt.Sprintf("%s/%s", ClientEndpointKeyPrefix, chain))
}

// KeyChannelState creates and returns a new key used for channel lifecycle store operations
func KeyChannelState(chain ChainIdentity) []byte {
	return []byte(fmt.Sprintf("%s/%s", ChannelStateKeyPrefix, chain))
}
