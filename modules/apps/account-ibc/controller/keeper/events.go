package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// EmitActionSentEvent emits an event signalling an action was sent to a counterparty chain
func EmitActionSentEvent(ctx sdk.Context, pending types.PendingAction) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeActionSent,
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", pending.Sequence)),
			sdk.NewAttribute(types.AttributeKeyChain, pending.Chain.String()),
			sdk.NewAttribute(types.AttributeKeyActionKind, string(pending.Kind)),
			sdk.NewAttribute(types.AttributeKeyCaller, pending.Caller),
			sdk.NewAttribute(types.AttributeKeyAccountID, pending.Account.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitActionAcknowledgedEvent emits an event signalling the outcome of a sent action is known
func EmitActionAcknowledgedEvent(ctx sdk.Context, pending types.PendingAction, result types.AcknowledgementResult) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", pending.Sequence)),
		sdk.NewAttribute(types.AttributeKeyChain, pending.Chain.String()),
		sdk.NewAttribute(types.AttributeKeyActionKind, string(pending.Kind)),
		sdk.NewAttribute(types.AttributeKeyResultKind, string(result.Kind)),
	}
	if result.Error != "" {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckError, result.Error))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeActionAcknowledged, attributes...))
}

// EmitActionCallbackEvent emits an event reporting whether the callback of an action was delivered
func EmitActionCallbackEvent(ctx sdk.Context, callback types.Callback, err error) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", callback.Sequence)),
		sdk.NewAttribute(types.AttributeKeyChain, callback.Chain.String()),
		sdk.NewAttribute(types.AttributeKeyCaller, callback.Caller),
		sdk.NewAttribute(types.AttributeKeyResultKind, string(callback.Result.Kind)),
	}

	if err != nil {
		attributes = append(attributes,
			sdk.NewAttribute(types.AttributeKeyCallbackResult, types.CallbackResultFailure),
			sdk.NewAttribute(types.AttributeKeyCallbackError, err.Error()),
		)
	} else {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyCallbackResult, types.CallbackResultSuccess))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeActionCallback, attributes...))
}

// EmitInfrastructureEvent emits an event for a change of the infrastructure link of a chain
func EmitInfrastructureEvent(ctx sdk.Context, eventType string, link types.InfrastructureLink) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyChain, link.Chain.String()),
			sdk.NewAttribute(types.AttributeKeyRelayEndpoint, link.RelayEndpoint),
			sdk.NewAttribute(types.AttributeKeyRemoteHost, link.RemoteHost),
			sdk.NewAttribute(types.AttributeKeyRemoteProxy, link.RemoteProxy),
		),
	)
}
