package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// MaxRetries is the largest retry budget a packet may carry
	MaxRetries = 5

	// MaxCorrelationTokenLength is the maximum length in bytes of a correlation token
	MaxCorrelationTokenLength = 1024
)

// PacketData is the versioned payload exchanged between the client and host dispatchers. It is
// self sufficient: the host needs nothing but the packet and its own state to process it.
type PacketData struct {
	DestinationChain ChainIdentity `json:"destination_chain"`
	Retries          uint32        `json:"retries"`
	Account          AccountID     `json:"account"`
	CorrelationToken []byte        `json:"correlation_token,omitempty"`
	Action           Action        `json:"action"`
}

// NewPacketData creates a new PacketData instance
func NewPacketData(destination ChainIdentity, retries uint32, account AccountID, token []byte, action Action) PacketData {
	return PacketData{
		DestinationChain: destination,
		Retries:          retries,
		Account:          account,
		CorrelationToken: token,
		Action:           action,
	}
}

// ValidateBasic performs basic validation of the packet data
func (pd PacketData) ValidateBasic() error {
	if err := pd.DestinationChain.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidPacketData, err.Error())
	}

	if pd.Retries > MaxRetries {
		return sdkerrors.Wrapf(ErrInvalidRetries, "retries cannot exceed %d, got %d", MaxRetries, pd.Retries)
	}

	if err := pd.Account.Validate(); err != nil {
		return err
	}

	if len(pd.CorrelationToken) > MaxCorrelationTokenLength {
		return sdkerrors.Wrapf(ErrInvalidPacketData, "correlation token cannot exceed %d bytes", MaxCorrelationTokenLength)
	}

	return pd.Action.ValidateBasic()
}

// GetBytes returns the sorted JSON encoding of the packet data
func (pd PacketData) GetBytes() []byte {
	bz, err := json.Marshal(pd)
	if err != nil {
		panic(err)
	}

	return sdk.MustSortJSON(bz)
}

// DecodePacketData unmarshals packet data. Unknown fields are ignored so that a newer sender
// degrades gracefully against an older receiver.
func DecodePacketData(bz []byte) (PacketData, error) {
	var data PacketData
	if err := json.Unmarshal(bz, &data); err != nil {
		return PacketData{}, sdkerrors.Wrapf(ErrInvalidPacketData, "cannot unmarshal account ibc packet data: %s", err)
	}

	return data, nil
}

// Packet is the transport envelope carrying encoded PacketData from a client relay endpoint to a
// host dispatcher on the counterparty chain.
type Packet struct {
	Sequence         uint64        `json:"sequence" yaml:"sequence"`
	SourceChain      ChainIdentity `json:"source_chain" yaml:"source_chain"`
	SourceEndpoint   string        `json:"source_endpoint" yaml:"source_endpoint"`
	DestinationChain ChainIdentity `json:"destination_chain" yaml:"destination_chain"`
	DestinationHost  string        `json:"destination_host" yaml:"destination_host"`
	Data             []byte        `json:"data" yaml:"data"`
}

// NewPacket creates a new Packet instance
func NewPacket(sequence uint64, source ChainIdentity, sourceEndpoint string, destination ChainIdentity, destinationHost string, data []byte) Packet {
	return Packet{
		Sequence:         sequence,
		SourceChain:      source,
		SourceEndpoint:   sourceEndpoint,
		DestinationChain: destination,
		DestinationHost:  destinationHost,
		Data:             data,
	}
}

// ValidateBasic performs basic validation of the packet envelope
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return sdkerrors.Wrap(ErrInvalidPacketData, "packet sequence cannot be 0")
	}

	if err := p.SourceChain.Validate(); err != nil {
		return err
	}

	if err := p.DestinationChain.Validate(); err != nil {
		return err
	}

	if len(p.Data) == 0 {
		return sdkerrors.Wrap(ErrInvalidPacketData, "packet data cannot be empty")
	}

	return nil
}

// String implements fmt.Stringer
func (p Packet) String() string {
	return fmt.Sprintf("%s/%s -> %s/%s sequence %d", p.SourceChain, p.SourceEndpoint, p.DestinationChain, p.DestinationHost, p.Sequence)
}
