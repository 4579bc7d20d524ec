package controller

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// IBCModule implements the transport callbacks of the account ibc client submodule
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnAcknowledgementPacket resolves the action the packet carried with the acknowledgement written
// by the host. A malformed acknowledgement is returned as an error and leaves the action pending.
func (im IBCModule) OnAcknowledgementPacket(ctx sdk.Context, packet types.Packet, acknowledgement []byte) error {
	if !im.keeper.IsClientEnabled(ctx) {
		return types.ErrControllerSubModuleDisabled
	}

	if packet.SourceChain != im.keeper.LocalChain(ctx) {
		return sdkerrors.Wrapf(types.ErrInvalidPacketData, "packet was not sent by %s", im.keeper.LocalChain(ctx))
	}

	ack, err := types.DecodeAcknowledgement(acknowledgement)
	if err != nil {
		return err
	}

	result, err := types.ResultFromAcknowledgement(ack)
	if err != nil {
		return err
	}

	return im.keeper.OnAcknowledgement(ctx, packet.Sequence, result)
}

// OnTimeoutPacket resolves the action the packet carried as timed out
func (im IBCModule) OnTimeoutPacket(ctx sdk.Context, packet types.Packet) error {
	if !im.keeper.IsClientEnabled(ctx) {
		return types.ErrControllerSubModuleDisabled
	}

	if packet.SourceChain != im.keeper.LocalChain(ctx) {
		return sdkerrors.Wrapf(types.ErrInvalidPacketData, "packet was not sent by %s", im.keeper.LocalChain(ctx))
	}

	return im.keeper.OnTimeout(ctx, packet.Sequence)
}
