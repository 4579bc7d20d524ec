package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// ModuleCdc references the global account ibc module codec. It encodes the records kept in the
// controller and host stores as well as genesis and legacy query responses.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the account ibc types on the provided LegacyAmino codec.
// The module defines no interface implementations, all records are concrete types.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {}

// RegisterInterfaces registers the account ibc interface implementations. The module exposes no
// sdk.Msg or account implementations.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {}
