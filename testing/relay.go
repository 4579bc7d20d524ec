package ibctesting

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	"github.com/abstract-accounts/account-ibc/testing/mock"
)

// RelayNext relays the oldest entry of the source outbox to the destination chain. For a packet the
// acknowledgement written by the destination host is relayed back and returned.
func (coord *Coordinator) RelayNext(src, dst *TestChain) (*types.Acknowledgement, error) {
	outbox := src.Outbox()
	if len(outbox) == 0 {
		return nil, fmt.Errorf("no entries to relay from %s", src.ChainID)
	}

	return coord.RelayEntry(src, dst, outbox[0])
}

// RelayEntry relays a single outbox entry of the source chain and removes it from the outbox
func (coord *Coordinator) RelayEntry(src, dst *TestChain, entry mock.OutboxEntry) (*types.Acknowledgement, error) {
	src.Transport.Remove(src.GetContext(), entry.Index)

	if entry.Transfer != nil {
		return nil, coord.DeliverTransfer(dst, *entry.Transfer)
	}

	ack := coord.DeliverPacket(dst, *entry.Packet)
	if err := coord.AcknowledgePacket(src, *entry.Packet, ack); err != nil {
		return &ack, err
	}

	return &ack, nil
}

// RelayAll relays every entry of the source outbox, oldest first, and returns the acknowledgements
// of the relayed packets.
func (coord *Coordinator) RelayAll(src, dst *TestChain) []types.Acknowledgement {
	var acks []types.Acknowledgement
	for _, entry := range src.Outbox() {
		ack, err := coord.RelayEntry(src, dst, entry)
		require.NoError(coord.T, err)

		if ack != nil {
			acks = append(acks, *ack)
		}
	}

	return acks
}

// RelayAllInReverse relays every entry of the source outbox, newest first
func (coord *Coordinator) RelayAllInReverse(src, dst *TestChain) []types.Acknowledgement {
	outbox := src.Outbox()

	var acks []types.Acknowledgement
	for i := len(outbox) - 1; i >= 0; i-- {
		ack, err := coord.RelayEntry(src, dst, outbox[i])
		require.NoError(coord.T, err)

		if ack != nil {
			acks = append(acks, *ack)
		}
	}

	return acks
}

// DeliverPacket executes the packet on the destination host and returns its acknowledgement. The
// outbox of the sending chain is left untouched, so a packet may be delivered more than once.
func (coord *Coordinator) DeliverPacket(dst *TestChain, packet types.Packet) types.Acknowledgement {
	return dst.HostModule.OnRecvPacket(dst.GetContext(), packet)
}

// AcknowledgePacket hands the acknowledgement to the client of the sending chain
func (coord *Coordinator) AcknowledgePacket(src *TestChain, packet types.Packet, ack types.Acknowledgement) error {
	return src.ControllerModule.OnAcknowledgementPacket(src.GetContext(), packet, ack.Acknowledgement())
}

// DeliverTransfer mints the transferred tokens to the receiver on the destination chain
func (coord *Coordinator) DeliverTransfer(dst *TestChain, transfer mock.TokenTransfer) error {
	receiver, err := sdk.AccAddressFromBech32(transfer.Receiver)
	if err != nil {
		return err
	}

	return dst.BankKeeper.MintCoins(dst.GetContext(), receiver, sdk.NewCoins(transfer.Token))
}

// TimeoutNextPacket removes the oldest packet of the source outbox without delivering it and
// reports its timeout to the client of the source chain.
func (coord *Coordinator) TimeoutNextPacket(src *TestChain) error {
	for _, entry := range src.Outbox() {
		if entry.Packet != nil {
			return coord.TimeoutEntry(src, entry)
		}
	}

	return fmt.Errorf("no packets to time out on %s", src.ChainID)
}

// TimeoutEntry removes the packet entry from the source outbox without delivering it and reports
// its timeout to the client of the source chain.
func (coord *Coordinator) TimeoutEntry(src *TestChain, entry mock.OutboxEntry) error {
	if entry.Packet == nil {
		return fmt.Errorf("outbox entry %d of %s is not a packet", entry.Index, src.ChainID)
	}

	src.Transport.Remove(src.GetContext(), entry.Index)
	return src.ControllerModule.OnTimeoutPacket(src.GetContext(), *entry.Packet)
}
