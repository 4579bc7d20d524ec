package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// EmitRemoteAccountProvisionedEvent emits an event signalling a remote account was created
func EmitRemoteAccountProvisionedEvent(ctx sdk.Context, record types.RemoteAccountRecord) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoteAccountProvisioned,
			sdk.NewAttribute(types.AttributeKeyChain, record.OriginChain.String()),
			sdk.NewAttribute(types.AttributeKeyOriginAccountID, record.OriginAccount.String()),
			sdk.NewAttribute(types.AttributeKeyAccountID, record.AccountID.String()),
			sdk.NewAttribute(types.AttributeKeyAddress, record.Address),
		),
	)
}

// EmitClientEndpointEvent emits an event for a change of the endpoint trusted for a client chain
func EmitClientEndpointEvent(ctx sdk.Context, eventType string, chain types.ChainIdentity, endpoint string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyChain, chain.String()),
			sdk.NewAttribute(types.AttributeKeyEndpoint, endpoint),
		),
	)
}

// EmitChannelStateEvent emits an event for a channel lifecycle transition
func EmitChannelStateEvent(ctx sdk.Context, channel types.ChannelLifecycle) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelState,
			sdk.NewAttribute(types.AttributeKeyChain, channel.Chain.String()),
			sdk.NewAttribute(types.AttributeKeyChannelID, channel.ChannelID),
			sdk.NewAttribute(types.AttributeKeyChannelState, string(channel.State)),
		),
	)
}

// EmitFundsRecoveredEvent emits an event signalling funds were recovered from a remote account or
// from the proxy of a client chain. The origin account is empty for proxy recoveries.
func EmitFundsRecoveredEvent(ctx sdk.Context, origin types.ChainIdentity, originAccount, address, recipient string, assets sdk.Coins) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundsRecovered,
			sdk.NewAttribute(types.AttributeKeyChain, origin.String()),
			sdk.NewAttribute(types.AttributeKeyOriginAccountID, originAccount),
			sdk.NewAttribute(types.AttributeKeyAddress, address),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, assets.String()),
		),
	)
}

// EmitPacketEvent emits an event describing the acknowledgement written for a received packet
func EmitPacketEvent(ctx sdk.Context, packet types.Packet, kind types.ActionKind, ack types.Acknowledgement) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyChain, packet.SourceChain.String()),
		sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.Sequence)),
		sdk.NewAttribute(types.AttributeKeyActionKind, string(kind)),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, fmt.Sprintf("%t", ack.Success())),
	}

	if !ack.Success() {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckError, ack.Error))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePacket, attributes...))
}
