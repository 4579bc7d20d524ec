package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// OpenChannel records the channel as the open channel of the client chain. A channel may only
// replace a previous one once that one is CLOSED, and a closed channel is never reopened.
func (k Keeper) OpenChannel(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	next := types.ChannelLifecycle{Chain: chain, ChannelID: channelID, State: types.ChannelStateOpen}
	if err := next.Validate(); err != nil {
		return err
	}

	if current, found := k.GetChannelLifecycle(ctx, chain); found {
		switch {
		case current.ChannelID == channelID:
			return sdkerrors.Wrapf(types.ErrInvalidChannelTransition, "channel %s is already %s", channelID, current.State)
		case current.IsHealthy():
			return sdkerrors.Wrapf(types.ErrInvalidChannelTransition, "channel %s to %s is still %s", current.ChannelID, chain, current.State)
		}
	}

	k.setChannelState(ctx, next)

	return nil
}

// BeginCloseChannel moves the open channel of the client chain to CLOSING
func (k Keeper) BeginCloseChannel(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	return k.transitionChannel(ctx, chain, channelID, types.ChannelStateClosing)
}

// ConfirmCloseChannel moves the channel of the client chain to CLOSED. Funds held by remote
// accounts of that chain may be recovered afterwards.
func (k Keeper) ConfirmCloseChannel(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	return k.transitionChannel(ctx, chain, channelID, types.ChannelStateClosed)
}

func (k Keeper) transitionChannel(ctx sdk.Context, chain types.ChainIdentity, channelID string, state types.ChannelState) error {
	current, found := k.GetChannelLifecycle(ctx, chain)
	if !found || current.ChannelID != channelID {
		return sdkerrors.Wrapf(types.ErrInvalidChannelTransition, "channel %s is not the channel of %s", channelID, chain)
	}

	if !current.CanTransition(state) {
		return sdkerrors.Wrapf(types.ErrInvalidChannelTransition, "channel %s cannot move from %s to %s", channelID, current.State, state)
	}

	current.State = state
	k.setChannelState(ctx, current)

	return nil
}

func (k Keeper) setChannelState(ctx sdk.Context, channel types.ChannelLifecycle) {
	k.SetChannelLifecycle(ctx, channel)

	EmitChannelStateEvent(ctx, channel)
	k.Logger(ctx).Info("channel state updated", "chain", channel.Chain, "channel-id", channel.ChannelID, "state", channel.State)
}
